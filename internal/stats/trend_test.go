package stats

import (
	"math"
	"testing"
	"time"

	"github.com/telemetryd/telemetryd/internal/types"
)

func table(values ...float64) types.Table {
	t := make(types.Table, len(values))
	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	for i, v := range values {
		t[i] = types.TableRow{Value: v, Timestamp: base.Add(time.Duration(i) * time.Second)}
	}
	return t
}

func TestEstimateTrend(t *testing.T) {
	tests := []struct {
		name          string
		values        []float64
		wantSlope     float64
		wantIntercept float64
		wantR         float64
		epsilon       float64
	}{
		{
			name:          "perfect ascending line",
			values:        []float64{1, 2, 3, 4, 5},
			wantSlope:     1.0,
			wantIntercept: 1.0,
			wantR:         1.0,
			epsilon:       1e-9,
		},
		{
			name:          "perfect descending line",
			values:        []float64{10, 8, 6, 4},
			wantSlope:     -2.0,
			wantIntercept: 10.0,
			wantR:         -1.0,
			epsilon:       1e-9,
		},
		{
			name:          "two points",
			values:        []float64{17, 19},
			wantSlope:     2.0,
			wantIntercept: 17.0,
			wantR:         1.0,
			epsilon:       1e-9,
		},
		{
			name:          "constant values",
			values:        []float64{5, 5, 5, 5},
			wantSlope:     0.0,
			wantIntercept: 5.0,
			wantR:         0.0,
			epsilon:       1e-9,
		},
		{
			name:          "noisy readings",
			values:        []float64{18.2, 19.1, 18.7, 20.3, 21.0},
			wantSlope:     0.68,
			wantIntercept: 18.10,
			wantR:         0.982,
			epsilon:       0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trend, ok := EstimateTrend(table(tt.values...))
			if !ok {
				t.Fatal("expected a trend, got none")
			}
			if math.Abs(trend.Slope-tt.wantSlope) > tt.epsilon {
				t.Errorf("slope: expected %.4f, got %.4f", tt.wantSlope, trend.Slope)
			}
			if math.Abs(trend.Intercept-tt.wantIntercept) > tt.epsilon {
				t.Errorf("intercept: expected %.4f, got %.4f", tt.wantIntercept, trend.Intercept)
			}
			if math.Abs(trend.R-tt.wantR) > tt.epsilon {
				t.Errorf("r: expected %.4f, got %.4f", tt.wantR, trend.R)
			}
		})
	}
}

func TestEstimateTrendDegenerate(t *testing.T) {
	for _, values := range [][]float64{{}, {42.0}} {
		trend, ok := EstimateTrend(table(values...))
		if ok {
			t.Errorf("n=%d: expected no trend, got %+v", len(values), trend)
		}
		if math.IsNaN(trend.Slope) || math.IsInf(trend.Slope, 0) {
			t.Errorf("n=%d: slope must not be NaN/Inf, got %v", len(values), trend.Slope)
		}
	}
}

func TestFitLine(t *testing.T) {
	tbl := table(1, 2, 3, 4, 5)
	trend, ok := EstimateTrend(tbl)
	if !ok {
		t.Fatal("expected a trend")
	}

	fitted := FitLine(tbl, trend)
	if len(fitted) != len(tbl) {
		t.Fatalf("expected %d fitted values, got %d", len(tbl), len(fitted))
	}
	for i, want := range []float64{1, 2, 3, 4, 5} {
		if math.Abs(fitted[i]-want) > 1e-9 {
			t.Errorf("fitted[%d]: expected %.2f, got %.2f", i, want, fitted[i])
		}
	}
}

func TestFitLineEmpty(t *testing.T) {
	if fitted := FitLine(types.Table{}, Trend{Slope: 1, Intercept: 2}); len(fitted) != 0 {
		t.Errorf("expected no fitted values for an empty table, got %d", len(fitted))
	}
}
