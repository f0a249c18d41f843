package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSimulatedSourceRange(t *testing.T) {
	s, err := NewSimulatedSource(17, 23)
	if err != nil {
		t.Fatalf("NewSimulatedSource: %v", err)
	}

	for i := 0; i < 200; i++ {
		r, err := s.Next(context.Background())
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if r.Value < 17 || r.Value > 23 {
			t.Fatalf("value %.2f outside configured range [17, 23]", r.Value)
		}
	}
}

func TestSimulatedSourceTimestampsMonotonic(t *testing.T) {
	s, err := NewSimulatedSource(0, 1)
	if err != nil {
		t.Fatalf("NewSimulatedSource: %v", err)
	}

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	var prev time.Time
	for i := 0; i < 10; i++ {
		r, _ := s.Next(context.Background())
		if r.Timestamp.Before(prev) {
			t.Fatalf("timestamp went backwards: %v before %v", r.Timestamp, prev)
		}
		prev = r.Timestamp
	}
}

func TestSimulatedSourceRejectsInvertedRange(t *testing.T) {
	if _, err := NewSimulatedSource(10, 5); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestHTTPSourceNext(t *testing.T) {
	ts := time.Date(2026, 6, 1, 8, 30, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sensorResponse{Value: 21.4, Timestamp: ts})
	}))
	defer srv.Close()

	s, err := NewHTTPSource(srv.URL)
	if err != nil {
		t.Fatalf("NewHTTPSource: %v", err)
	}

	r, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Value != 21.4 {
		t.Errorf("value: expected 21.4, got %.2f", r.Value)
	}
	if !r.Timestamp.Equal(ts) {
		t.Errorf("timestamp: expected %v, got %v", ts, r.Timestamp)
	}
}

func TestHTTPSourceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "sensor offline", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s, _ := NewHTTPSource(srv.URL)
	if _, err := s.Next(context.Background()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestHTTPSourceFillsMissingTimestamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value": 19.0}`))
	}))
	defer srv.Close()

	s, _ := NewHTTPSource(srv.URL)
	r, err := s.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if r.Timestamp.IsZero() {
		t.Error("expected a local timestamp to be filled in")
	}
}
