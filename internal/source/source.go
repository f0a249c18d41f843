// Package source defines the reading source boundary and the built-in
// source implementations. A Source produces one timestamped scalar value
// per call; the aggregator pulls from it once per refresh tick.
package source

import (
	"context"

	"github.com/telemetryd/telemetryd/internal/types"
)

// Source is the input boundary for sensor readings. Next is called once per
// tick and must return within bounded latency; implementations should honor
// ctx cancellation. Timestamps are expected to be monotonically
// non-decreasing across calls.
type Source interface {
	Next(ctx context.Context) (types.Reading, error)
}
