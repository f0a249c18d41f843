package stats

import (
	"github.com/telemetryd/telemetryd/internal/types"
)

// Distribution partitions a snapshot's values around a threshold. The two
// counts always sum to the number of rows.
type Distribution struct {
	Above     int `json:"above"`
	AtOrBelow int `json:"at_or_below"`
}

// BucketByThreshold counts the rows with values strictly above the
// threshold and those at or below it. An empty table yields zero counts.
func BucketByThreshold(table types.Table, threshold float64) Distribution {
	var d Distribution
	for _, row := range table {
		if row.Value > threshold {
			d.Above++
		} else {
			d.AtOrBelow++
		}
	}
	return d
}
