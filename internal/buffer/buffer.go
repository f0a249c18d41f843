// Package buffer implements the bounded history buffer that retains the
// most recent sensor readings in arrival order.
package buffer

import (
	"fmt"

	"github.com/telemetryd/telemetryd/internal/types"
)

// Buffer is a fixed-capacity FIFO of readings. When a push would exceed
// capacity, the oldest reading is evicted. Buffer is not safe for
// concurrent use; the aggregator is its single writer.
type Buffer struct {
	readings []types.Reading
	capacity int
}

// New creates a Buffer with the given capacity. Capacity must be positive.
func New(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("buffer capacity must be positive, got %d", capacity)
	}
	return &Buffer{
		readings: make([]types.Reading, 0, capacity),
		capacity: capacity,
	}, nil
}

// Push appends a reading, evicting the oldest one first if the buffer is
// full. Push always succeeds.
func (b *Buffer) Push(r types.Reading) {
	if len(b.readings) == b.capacity {
		copy(b.readings, b.readings[1:])
		b.readings = b.readings[:len(b.readings)-1]
	}
	b.readings = append(b.readings, r)
}

// Snapshot returns a copy of the current contents in insertion order.
func (b *Buffer) Snapshot() []types.Reading {
	out := make([]types.Reading, len(b.readings))
	copy(out, b.readings)
	return out
}

// Len returns the number of readings currently held.
func (b *Buffer) Len() int {
	return len(b.readings)
}

// Capacity returns the fixed capacity set at construction.
func (b *Buffer) Capacity() int {
	return b.capacity
}
