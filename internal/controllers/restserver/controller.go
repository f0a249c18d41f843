// Package restserver exposes the aggregated telemetry over HTTP for
// display components. It serves the latest reading, the tabular snapshot,
// the trend fit, and the threshold distribution, each derived from the
// aggregator's cached combined result.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/telemetryd/telemetryd/internal/aggregator"
	"github.com/telemetryd/telemetryd/internal/log"
	"github.com/telemetryd/telemetryd/pkg/config"
)

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	restConfig config.RESTServerData
	Server     http.Server
	logger     *zap.SugaredLogger
	handlers   *Handlers

	aggregators   map[string]*aggregator.Aggregator
	defaultSensor string
}

// NewController creates a new REST server controller serving the given
// aggregators, keyed by sensor name. defaultSensor is used when a request
// does not select a sensor explicitly.
func NewController(ctx context.Context, wg *sync.WaitGroup, rc config.RESTServerData,
	aggregators map[string]*aggregator.Aggregator, defaultSensor string,
	logger *zap.SugaredLogger) (*Controller, error) {

	if len(aggregators) == 0 {
		return nil, fmt.Errorf("REST server requires at least one aggregator")
	}
	if _, ok := aggregators[defaultSensor]; !ok {
		return nil, fmt.Errorf("default sensor %q is not configured", defaultSensor)
	}

	if rc.ListenAddr == "" {
		logger.Info("rest.listen-addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		rc.ListenAddr = "0.0.0.0"
	}
	if rc.Port == 0 {
		logger.Info("rest.port not provided; defaulting to 8080")
		rc.Port = 8080
	}

	ctrl := &Controller{
		ctx:           ctx,
		wg:            wg,
		restConfig:    rc,
		logger:        logger,
		aggregators:   aggregators,
		defaultSensor: defaultSensor,
	}

	ctrl.handlers = NewHandlers(ctrl)

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", rc.ListenAddr, rc.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/api/latest", c.handlers.GetLatest)
	router.HandleFunc("/api/readings", c.handlers.GetReadings)
	router.HandleFunc("/api/trend", c.handlers.GetTrend)
	router.HandleFunc("/api/distribution", c.handlers.GetDistribution)
	router.HandleFunc("/api/combined", c.handlers.GetCombined)

	return router
}

// aggregatorForRequest resolves the aggregator selected by the request's
// sensor query parameter, falling back to the default sensor.
func (c *Controller) aggregatorForRequest(req *http.Request) (*aggregator.Aggregator, string, error) {
	name := req.URL.Query().Get("sensor")
	if name == "" {
		name = c.defaultSensor
	}
	agg, ok := c.aggregators[name]
	if !ok {
		return nil, name, fmt.Errorf("unknown sensor %q", name)
	}
	return agg, name, nil
}
