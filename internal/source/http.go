package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/telemetryd/telemetryd/internal/types"
)

// sensorResponse is the JSON payload expected from a remote sensor's
// current-value endpoint.
type sensorResponse struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// HTTPSource polls a remote sensor over HTTP. Each Next call performs one
// GET against the configured URL and decodes a sensorResponse. Fetch
// failures are returned to the caller, which treats them as a skipped tick.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source polling the given URL with a bounded
// request timeout.
func NewHTTPSource(url string) (*HTTPSource, error) {
	if url == "" {
		return nil, fmt.Errorf("http source requires a URL")
	}
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Next fetches the sensor's current reading. A missing timestamp in the
// response is filled with the local receive time.
func (s *HTTPSource) Next(ctx context.Context) (types.Reading, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return types.Reading{}, fmt.Errorf("building sensor request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return types.Reading{}, fmt.Errorf("fetching sensor reading: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Reading{}, fmt.Errorf("unexpected status %d from sensor at %s", resp.StatusCode, s.url)
	}

	var payload sensorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return types.Reading{}, fmt.Errorf("decoding sensor response: %w", err)
	}

	if payload.Timestamp.IsZero() {
		payload.Timestamp = time.Now()
	}

	return types.Reading{
		Value:     payload.Value,
		Timestamp: payload.Timestamp,
	}, nil
}
