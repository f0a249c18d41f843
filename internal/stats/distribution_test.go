package stats

import (
	"testing"
)

func TestBucketByThreshold(t *testing.T) {
	tests := []struct {
		name          string
		values        []float64
		threshold     float64
		wantAbove     int
		wantAtOrBelow int
	}{
		{
			name:          "mixed readings around threshold",
			values:        []float64{18, 19, 20, 21, 22},
			threshold:     20,
			wantAbove:     2,
			wantAtOrBelow: 3,
		},
		{
			name:          "all above",
			values:        []float64{25, 26, 27},
			threshold:     20,
			wantAbove:     3,
			wantAtOrBelow: 0,
		},
		{
			name:          "all at or below",
			values:        []float64{17, 20, 20},
			threshold:     20,
			wantAbove:     0,
			wantAtOrBelow: 3,
		},
		{
			name:          "value equal to threshold counts below",
			values:        []float64{20},
			threshold:     20,
			wantAbove:     0,
			wantAtOrBelow: 1,
		},
		{
			name:          "empty window",
			values:        nil,
			threshold:     20,
			wantAbove:     0,
			wantAtOrBelow: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BucketByThreshold(table(tt.values...), tt.threshold)
			if got.Above != tt.wantAbove {
				t.Errorf("above: expected %d, got %d", tt.wantAbove, got.Above)
			}
			if got.AtOrBelow != tt.wantAtOrBelow {
				t.Errorf("at_or_below: expected %d, got %d", tt.wantAtOrBelow, got.AtOrBelow)
			}
			if got.Above+got.AtOrBelow != len(tt.values) {
				t.Errorf("counts must sum to %d, got %d", len(tt.values), got.Above+got.AtOrBelow)
			}
		})
	}
}

func TestBucketByThresholdSumsToN(t *testing.T) {
	tbl := table(18.1, 19.9, 20.0, 20.1, 22.5, 16.3, 21.7)
	for _, threshold := range []float64{-100, 15, 20, 25, 100} {
		d := BucketByThreshold(tbl, threshold)
		if d.Above+d.AtOrBelow != len(tbl) {
			t.Errorf("threshold %.1f: counts sum to %d, want %d", threshold, d.Above+d.AtOrBelow, len(tbl))
		}
	}
}
