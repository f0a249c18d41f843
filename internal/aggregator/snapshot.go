package aggregator

import (
	"github.com/telemetryd/telemetryd/internal/types"
)

// BuildTable materializes buffer contents into the tabular snapshot served
// to display components. It is a pure function: the input is not mutated
// and row order matches buffer order. A nil or empty input yields an empty
// table.
func BuildTable(readings []types.Reading) types.Table {
	table := make(types.Table, len(readings))
	for i, r := range readings {
		table[i] = types.TableRow{
			Value:     r.Value,
			Timestamp: r.Timestamp,
		}
	}
	return table
}
