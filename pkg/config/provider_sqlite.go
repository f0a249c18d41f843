package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	sensors, err := s.GetSensors()
	if err != nil {
		return nil, fmt.Errorf("failed to load sensors: %w", err)
	}
	config.Sensors = sensors

	restServer, err := s.GetRESTServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load REST server config: %w", err)
	}
	config.RESTServer = restServer

	return config, nil
}

// GetSensors returns sensor configurations from the sensors table
func (s *SQLiteProvider) GetSensors() ([]SensorData, error) {
	rows, err := s.db.Query(`
		SELECT name, type, url, range_min, range_max, capacity, interval, threshold
		FROM sensors
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sensors: %w", err)
	}
	defer rows.Close()

	var sensors []SensorData
	for rows.Next() {
		var sensor SensorData
		var sensorType, url, interval sql.NullString
		var rangeMin, rangeMax, threshold sql.NullFloat64
		var capacity sql.NullInt64

		err := rows.Scan(&sensor.Name, &sensorType, &url, &rangeMin, &rangeMax,
			&capacity, &interval, &threshold)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sensor row: %w", err)
		}

		sensor.Type = sensorType.String
		sensor.URL = url.String
		sensor.RangeMin = rangeMin.Float64
		sensor.RangeMax = rangeMax.Float64
		sensor.Capacity = int(capacity.Int64)
		sensor.Interval = interval.String
		sensor.Threshold = threshold.Float64
		sensor.ApplyDefaults()

		sensors = append(sensors, sensor)
	}

	return sensors, rows.Err()
}

// GetRESTServerConfig returns the REST server configuration, or nil if no
// row is present
func (s *SQLiteProvider) GetRESTServerConfig() (*RESTServerData, error) {
	var rest RESTServerData
	var listenAddr sql.NullString

	err := s.db.QueryRow(`SELECT listen_addr, port FROM rest_server LIMIT 1`).
		Scan(&listenAddr, &rest.Port)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query REST server config: %w", err)
	}

	rest.ListenAddr = listenAddr.String
	return &rest, nil
}

// IsReadOnly returns false since SQLite configurations can be modified
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the underlying database handle
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
