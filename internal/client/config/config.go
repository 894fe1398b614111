package config

import "time"

// Config holds runtime settings for the Prism CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - DatabaseDSN: path of the local sqlite database holding the tokens.
//   - HealthCheckInterval: how often the client probes backend liveness.
type Config struct {
	ServerBaseURL       string
	DatabaseDSN         string
	HealthCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.DatabaseDSN = "prism.db"
	c.HealthCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config by layering sources, later ones taking
// precedence: defaults, environment (including a .env file if present),
// optional JSON file, command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
