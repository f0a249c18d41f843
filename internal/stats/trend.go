// Package stats provides the derived statistics computed over a snapshot of
// the history buffer: an ordinary least squares trend line and a threshold
// bucketed distribution. All functions are pure and total over any
// well-formed table, including an empty one.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/telemetryd/telemetryd/internal/types"
)

// Trend is a least-squares line fit over a snapshot, with the values
// indexed by position (x = 0..n-1). R is the Pearson correlation
// coefficient of the fit.
type Trend struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R         float64 `json:"r"`
}

// EstimateTrend fits an OLS line to the table's values against their row
// indices. Fewer than two rows cannot determine a line: the second return
// is false and the Trend zero value is returned, never NaN or Inf.
func EstimateTrend(table types.Table) (Trend, bool) {
	if len(table) < 2 {
		return Trend{}, false
	}

	xs := make([]float64, len(table))
	ys := make([]float64, len(table))
	for i, row := range table {
		xs[i] = float64(i)
		ys[i] = row.Value
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	// Correlation is undefined for constant values (zero variance in y);
	// report r = 0 rather than NaN in that case.
	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		r = 0
	}

	return Trend{
		Slope:     slope,
		Intercept: intercept,
		R:         r,
	}, true
}

// FitLine evaluates the trend line at each row index of the table,
// producing the fitted values used for chart overlays.
func FitLine(table types.Table, trend Trend) []float64 {
	fitted := make([]float64, len(table))
	for i := range table {
		fitted[i] = trend.Slope*float64(i) + trend.Intercept
	}
	return fitted
}
