package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envServerBaseURL       = "PRISM_SERVER_URL"
	envDatabaseDSN         = "PRISM_DATABASE_DSN"
	envHealthCheckInterval = "PRISM_HEALTH_CHECK_INTERVAL"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first; already-set variables win over the
// file, and a missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerBaseURL); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv(envHealthCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HealthCheckInterval = d
		}
	}
}
