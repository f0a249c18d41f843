// Package aggregator implements the streaming aggregation engine: a
// single-writer refresh loop that pulls one reading per tick from a source,
// maintains the bounded history buffer, and publishes an atomically swapped
// combined result for any number of concurrent readers.
package aggregator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/telemetryd/telemetryd/internal/buffer"
	"github.com/telemetryd/telemetryd/internal/source"
	"github.com/telemetryd/telemetryd/internal/types"
)

// Config holds the aggregation parameters for one sensor stream.
type Config struct {
	// Capacity is the history buffer size. Must be positive.
	Capacity int

	// Interval is the refresh period. Must be positive.
	Interval time.Duration

	// Threshold is the cutpoint used by the distribution bucketer.
	Threshold float64
}

// Aggregator owns one sensor stream: the history buffer, the refresh timer,
// and the cached combined result. All mutation happens on the refresh
// goroutine; readers only ever observe a fully built result.
type Aggregator struct {
	cfg    Config
	src    source.Source
	buf    *buffer.Buffer
	logger *zap.SugaredLogger

	mu       sync.RWMutex
	combined *types.CombinedResult

	ready     chan struct{}
	readyOnce sync.Once
}

// New validates the configuration and creates an Aggregator. The refresh
// loop does not run until Start is called.
func New(cfg Config, src source.Source, logger *zap.SugaredLogger) (*Aggregator, error) {
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %v", cfg.Interval)
	}
	if src == nil {
		return nil, fmt.Errorf("a reading source is required")
	}

	buf, err := buffer.New(cfg.Capacity)
	if err != nil {
		return nil, err
	}

	return &Aggregator{
		cfg:    cfg,
		src:    src,
		buf:    buf,
		logger: logger,
		ready:  make(chan struct{}),
	}, nil
}

// Threshold returns the configured bucketing cutpoint for this stream.
func (a *Aggregator) Threshold() float64 {
	return a.cfg.Threshold
}

// Start launches the refresh loop. The loop performs an initial refresh
// immediately, then refreshes on every interval tick until ctx is
// cancelled. The last cached result remains readable after shutdown.
func (a *Aggregator) Start(ctx context.Context, wg *sync.WaitGroup) {
	wg.Add(1)
	go a.run(ctx, wg)
}

func (a *Aggregator) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	// Initial refresh immediately so readers don't wait a full interval
	a.Refresh(ctx)

	ticker := time.NewTicker(a.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("refresh loop stopped")
			return
		case <-ticker.C:
			a.Refresh(ctx)
		}
	}
}

// Refresh performs one tick: pull a reading, advance the buffer, rebuild
// the snapshot, and swap in the new combined result. It is invoked by the
// refresh loop; readers never call it. If the source fails, the tick is
// skipped and the previous cached result is retained unchanged; the next
// tick retries independently.
func (a *Aggregator) Refresh(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, a.cfg.Interval)
	defer cancel()

	reading, err := a.src.Next(tickCtx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		a.logger.Warnf("source unavailable, skipping tick: %v", err)
		return
	}

	a.buf.Push(reading)
	readings := a.buf.Snapshot()

	combined := &types.CombinedResult{
		Readings: readings,
		Table:    BuildTable(readings),
		Latest:   reading,
	}

	// Critical section is only the pointer swap; readers hold the old
	// result until they ask again.
	a.mu.Lock()
	a.combined = combined
	a.mu.Unlock()

	a.readyOnce.Do(func() { close(a.ready) })
}

// GetCombined returns the current cached combined result. If no refresh has
// completed yet it blocks until the first one does, or until ctx is done.
// Calls between two ticks return the identical cached result; reads never
// trigger recomputation.
func (a *Aggregator) GetCombined(ctx context.Context) (*types.CombinedResult, error) {
	select {
	case <-a.ready:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.combined, nil
}
