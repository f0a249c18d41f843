package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Sensors    []SensorYAML    `yaml:"sensors"`
		RESTServer *RESTServerYAML `yaml:"rest,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Sensors: make([]SensorData, len(yamlConfig.Sensors)),
	}

	for i, sensor := range yamlConfig.Sensors {
		config.Sensors[i] = SensorData{
			Name:      sensor.Name,
			Type:      sensor.Type,
			URL:       sensor.URL,
			RangeMin:  sensor.RangeMin,
			RangeMax:  sensor.RangeMax,
			Capacity:  sensor.Capacity,
			Interval:  sensor.Interval,
			Threshold: sensor.Threshold,
		}
		config.Sensors[i].ApplyDefaults()
	}

	if yamlConfig.RESTServer != nil {
		config.RESTServer = &RESTServerData{
			ListenAddr: yamlConfig.RESTServer.ListenAddr,
			Port:       yamlConfig.RESTServer.Port,
		}
	}

	y.config = config
	return config, nil
}

// GetSensors returns sensor configurations
func (y *YAMLProvider) GetSensors() ([]SensorData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return y.config.Sensors, nil
}

// GetRESTServerConfig returns the REST server configuration, or nil if the
// server is not configured
func (y *YAMLProvider) GetRESTServerConfig() (*RESTServerData, error) {
	if y.config == nil {
		_, err := y.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return y.config.RESTServer, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs with proper YAML tags for parsing
type SensorYAML struct {
	Name      string  `yaml:"name"`
	Type      string  `yaml:"type,omitempty"`
	URL       string  `yaml:"url,omitempty"`
	RangeMin  float64 `yaml:"range-min,omitempty"`
	RangeMax  float64 `yaml:"range-max,omitempty"`
	Capacity  int     `yaml:"capacity,omitempty"`
	Interval  string  `yaml:"interval,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
}

type RESTServerYAML struct {
	ListenAddr string `yaml:"listen-addr,omitempty"`
	Port       int    `yaml:"port,omitempty"`
}
