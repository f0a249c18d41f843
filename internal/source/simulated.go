package source

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/telemetryd/telemetryd/internal/types"
)

// SimulatedSource generates synthetic readings uniformly distributed over a
// fixed range, rounded to one decimal place like a typical sensor readout.
type SimulatedSource struct {
	min float64
	max float64
	rng *rand.Rand
	now func() time.Time
}

// NewSimulatedSource creates a source producing values in [min, max].
func NewSimulatedSource(min, max float64) (*SimulatedSource, error) {
	if max < min {
		return nil, fmt.Errorf("simulated source range is inverted: min %.2f > max %.2f", min, max)
	}
	return &SimulatedSource{
		min: min,
		max: max,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}, nil
}

// Next returns a new synthetic reading. It never fails.
func (s *SimulatedSource) Next(_ context.Context) (types.Reading, error) {
	value := s.min + s.rng.Float64()*(s.max-s.min)
	// One decimal of precision, matching real sensor readouts
	value = math.Round(value*10) / 10

	return types.Reading{
		Value:     value,
		Timestamp: s.now(),
	}, nil
}
