// Package app wires configuration, aggregators, and controllers into a
// running telemetryd instance with a managed lifecycle.
package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/telemetryd/telemetryd/internal/aggregator"
	"github.com/telemetryd/telemetryd/internal/controllers/restserver"
	"github.com/telemetryd/telemetryd/internal/log"
	"github.com/telemetryd/telemetryd/internal/source"
	"github.com/telemetryd/telemetryd/pkg/config"
)

// App represents the main application
type App struct {
	configProvider config.ConfigProvider
	logger         *zap.SugaredLogger
}

// New creates a new application instance
func New(configProvider config.ConfigProvider, logger *zap.SugaredLogger) *App {
	return &App{
		configProvider: configProvider,
		logger:         logger,
	}
}

// Run starts the application and blocks until shutdown
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfgData, err := a.configProvider.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	if len(cfgData.Sensors) == 0 {
		return fmt.Errorf("no sensors configured - at least one sensor is required")
	}

	// Build one aggregator per configured sensor and start its refresh loop
	aggregators := make(map[string]*aggregator.Aggregator, len(cfgData.Sensors))
	for _, sensorCfg := range cfgData.Sensors {
		agg, err := a.buildAggregator(sensorCfg)
		if err != nil {
			return fmt.Errorf("sensor %q: %w", sensorCfg.Name, err)
		}
		aggregators[sensorCfg.Name] = agg
		agg.Start(ctx, &wg)
		a.logger.Infof("started aggregator for sensor %q (capacity=%d, interval=%s, threshold=%.1f)",
			sensorCfg.Name, sensorCfg.Capacity, sensorCfg.Interval, sensorCfg.Threshold)
	}

	// Start the REST presentation server if configured
	if cfgData.RESTServer != nil {
		defaultSensor := cfgData.Sensors[0].Name
		rest, err := restserver.NewController(ctx, &wg, *cfgData.RESTServer,
			aggregators, defaultSensor, a.logger)
		if err != nil {
			return fmt.Errorf("error creating REST server: %w", err)
		}
		if err := rest.StartController(); err != nil {
			return fmt.Errorf("error starting REST server: %w", err)
		}
	}

	log.Info("Application started successfully")

	// Set up signal handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	select {
	case <-sigs:
		log.Info("shutdown signal received, initiating graceful shutdown...")
	case <-ctx.Done():
		log.Info("context cancelled, shutting down...")
	}

	// Cancel context to signal all goroutines to stop
	cancel()

	// Wait for all workers to terminate
	log.Info("waiting for all workers to terminate...")
	wg.Wait()
	log.Info("shutdown complete")

	return nil
}

// buildAggregator constructs the source and aggregator for one sensor
func (a *App) buildAggregator(sensorCfg config.SensorData) (*aggregator.Aggregator, error) {
	interval, err := sensorCfg.RefreshInterval()
	if err != nil {
		return nil, err
	}

	var src source.Source
	switch sensorCfg.Type {
	case "", "simulated":
		src, err = source.NewSimulatedSource(sensorCfg.RangeMin, sensorCfg.RangeMax)
	case "http":
		src, err = source.NewHTTPSource(sensorCfg.URL)
	default:
		return nil, fmt.Errorf("unknown sensor type %q", sensorCfg.Type)
	}
	if err != nil {
		return nil, err
	}

	return aggregator.New(aggregator.Config{
		Capacity:  sensorCfg.Capacity,
		Interval:  interval,
		Threshold: sensorCfg.Threshold,
	}, src, a.logger.Named(sensorCfg.Name))
}
