package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/prismai/prism-cli/internal/flagx"
	"github.com/prismai/prism-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals can be written either as strings like "30s" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	DatabaseDSN         string         `json:"database_dsn"`
	HealthCheckInterval timex.Duration `json:"health_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. With no flag set, nothing is loaded. Read or
// unmarshal errors panic; the config layer runs before anything else and a
// broken explicit config file should stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.HealthCheckInterval.Duration != 0 {
		cfg.HealthCheckInterval = time.Duration(jc.HealthCheckInterval.Duration)
	}
}
