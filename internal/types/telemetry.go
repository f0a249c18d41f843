// Package types contains the shared data types for telemetry readings and
// the derived views served to display components.
package types

import (
	"time"
)

// Reading is a single timestamped scalar sensor value. Readings are
// immutable once created: sources construct them and the aggregator owns
// them thereafter.
type Reading struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// TableRow is one row of the tabular snapshot, mirroring a Reading.
type TableRow struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// Table is an ordered, read-only tabular projection of the history buffer
// at a point in time. It is rebuilt every refresh tick and never mutated
// after construction.
type Table []TableRow

// CombinedResult is the atomic tuple produced by one refresh tick: the raw
// buffer contents, the tabular snapshot built from them, and the newest
// reading. All three fields are derived from the same tick and are mutually
// consistent. Consumers treat it as read-only.
type CombinedResult struct {
	Readings []Reading `json:"readings"`
	Table    Table     `json:"table"`
	Latest   Reading   `json:"latest"`
}
