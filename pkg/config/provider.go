// Package config provides configuration loading for telemetryd from YAML
// files or SQLite databases through a common provider interface.
package config

import (
	"fmt"
	"time"
)

// Defaults applied to sensor configurations that omit the corresponding
// fields.
const (
	DefaultCapacity  = 10
	DefaultInterval  = time.Second
	DefaultThreshold = 20.0
	DefaultRangeMin  = 17.0
	DefaultRangeMax  = 23.0
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetSensors() ([]SensorData, error)
	GetRESTServerConfig() (*RESTServerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Sensors    []SensorData    `json:"sensors"`
	RESTServer *RESTServerData `json:"rest,omitempty"`
}

// SensorData holds the configuration for one sensor stream: where readings
// come from and how they are aggregated.
type SensorData struct {
	Name      string  `json:"name"`
	Type      string  `json:"type,omitempty"` // "simulated" (default) or "http"
	URL       string  `json:"url,omitempty"`  // http sensor endpoint
	RangeMin  float64 `json:"range_min,omitempty"`
	RangeMax  float64 `json:"range_max,omitempty"`
	Capacity  int     `json:"capacity,omitempty"`
	Interval  string  `json:"interval,omitempty"` // duration string, e.g. "1s"
	Threshold float64 `json:"threshold,omitempty"`
}

// RESTServerData holds the configuration for the REST presentation server
type RESTServerData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	Port       int    `json:"port"`
}

// ApplyDefaults fills omitted sensor fields. A zero threshold defaults to
// DefaultThreshold; configure a small epsilon instead if a zero cutpoint is
// genuinely wanted.
func (s *SensorData) ApplyDefaults() {
	if s.Type == "" {
		s.Type = "simulated"
	}
	if s.Capacity == 0 {
		s.Capacity = DefaultCapacity
	}
	if s.Interval == "" {
		s.Interval = DefaultInterval.String()
	}
	if s.Threshold == 0 {
		s.Threshold = DefaultThreshold
	}
	if s.RangeMin == 0 && s.RangeMax == 0 {
		s.RangeMin = DefaultRangeMin
		s.RangeMax = DefaultRangeMax
	}
}

// RefreshInterval parses the sensor's interval string.
func (s *SensorData) RefreshInterval() (time.Duration, error) {
	if s.Interval == "" {
		return DefaultInterval, nil
	}
	d, err := time.ParseDuration(s.Interval)
	if err != nil {
		return 0, fmt.Errorf("sensor %q has invalid interval %q: %w", s.Name, s.Interval, err)
	}
	return d, nil
}
