package restserver

import (
	"net/http"
	"time"

	"github.com/telemetryd/telemetryd/internal/log"
	"github.com/telemetryd/telemetryd/internal/stats"
	"github.com/telemetryd/telemetryd/internal/types"
	"github.com/telemetryd/telemetryd/pkg/responseformat"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// latestResponse is the scalar readout for the current-value display
type latestResponse struct {
	Sensor    string    `json:"sensor"`
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
}

// readingsResponse is the tabular snapshot for the readings grid
type readingsResponse struct {
	Sensor string      `json:"sensor"`
	Rows   types.Table `json:"rows"`
}

// trendResponse carries the OLS fit for the chart overlay. Trend is nil
// when the window holds fewer than two readings.
type trendResponse struct {
	Sensor string       `json:"sensor"`
	Trend  *stats.Trend `json:"trend"`
	Points []float64    `json:"points,omitempty"`
}

// distributionResponse carries the threshold bucket counts
type distributionResponse struct {
	Sensor       string             `json:"sensor"`
	Threshold    float64            `json:"threshold"`
	Distribution stats.Distribution `json:"distribution"`
}

// combined resolves the cached combined result for the request's sensor,
// writing an HTTP error and returning false when it cannot.
func (h *Handlers) combined(w http.ResponseWriter, req *http.Request) (*types.CombinedResult, string, bool) {
	agg, name, err := h.controller.aggregatorForRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return nil, name, false
	}

	result, err := agg.GetCombined(req.Context())
	if err != nil {
		http.Error(w, "no readings available yet", http.StatusServiceUnavailable)
		return nil, name, false
	}
	return result, name, true
}

// GetLatest serves the most recent reading
func (h *Handlers) GetLatest(w http.ResponseWriter, req *http.Request) {
	result, name, ok := h.combined(w, req)
	if !ok {
		return
	}

	err := h.formatter.WriteResponse(w, req, latestResponse{
		Sensor:    name,
		Value:     result.Latest.Value,
		Timestamp: result.Latest.Timestamp,
	})
	if err != nil {
		log.Errorf("error writing latest reading response: %v", err)
	}
}

// GetReadings serves the tabular snapshot of the current window
func (h *Handlers) GetReadings(w http.ResponseWriter, req *http.Request) {
	result, name, ok := h.combined(w, req)
	if !ok {
		return
	}

	err := h.formatter.WriteResponse(w, req, readingsResponse{
		Sensor: name,
		Rows:   result.Table,
	})
	if err != nil {
		log.Errorf("error writing readings response: %v", err)
	}
}

// GetTrend serves the least-squares fit over the current window, along
// with the fitted values for the chart overlay
func (h *Handlers) GetTrend(w http.ResponseWriter, req *http.Request) {
	result, name, ok := h.combined(w, req)
	if !ok {
		return
	}

	resp := trendResponse{Sensor: name}
	if trend, ok := stats.EstimateTrend(result.Table); ok {
		resp.Trend = &trend
		resp.Points = stats.FitLine(result.Table, trend)
	}

	if err := h.formatter.WriteResponse(w, req, resp); err != nil {
		log.Errorf("error writing trend response: %v", err)
	}
}

// GetDistribution serves the threshold bucket counts over the current window
func (h *Handlers) GetDistribution(w http.ResponseWriter, req *http.Request) {
	agg, name, err := h.controller.aggregatorForRequest(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	result, err := agg.GetCombined(req.Context())
	if err != nil {
		http.Error(w, "no readings available yet", http.StatusServiceUnavailable)
		return
	}

	err = h.formatter.WriteResponse(w, req, distributionResponse{
		Sensor:       name,
		Threshold:    agg.Threshold(),
		Distribution: stats.BucketByThreshold(result.Table, agg.Threshold()),
	})
	if err != nil {
		log.Errorf("error writing distribution response: %v", err)
	}
}

// GetCombined serves the full combined result
func (h *Handlers) GetCombined(w http.ResponseWriter, req *http.Request) {
	result, _, ok := h.combined(w, req)
	if !ok {
		return
	}

	if err := h.formatter.WriteResponse(w, req, result); err != nil {
		log.Errorf("error writing combined response: %v", err)
	}
}
