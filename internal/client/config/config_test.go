package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	want := Config{
		ServerBaseURL:       "http://127.0.0.1:8000",
		DatabaseDSN:         "prism.db",
		HealthCheckInterval: 30 * time.Second,
	}

	var got Config
	got.LoadDefaults()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv(envServerBaseURL, "https://api.example.com")
	t.Setenv(envHealthCheckInterval, "4s")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, "https://api.example.com", cfg.ServerBaseURL)
	assert.Equal(t, "prism.db", cfg.DatabaseDSN, "unset variable keeps default")
	assert.Equal(t, 4*time.Second, cfg.HealthCheckInterval)
}

func TestParseEnv_InvalidIntervalIgnored(t *testing.T) {
	t.Setenv(envHealthCheckInterval, "soon")

	var cfg Config
	cfg.LoadDefaults()
	parseEnv(&cfg)

	assert.Equal(t, 30*time.Second, cfg.HealthCheckInterval)
}

func TestJsonConfigUnmarshal(t *testing.T) {
	data := []byte(`{"server_base_url":"http://10.0.0.1:9000","database_dsn":"/tmp/p.db","health_check_interval":"45s"}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))

	assert.Equal(t, "http://10.0.0.1:9000", jc.ServerBaseURL)
	assert.Equal(t, "/tmp/p.db", jc.DatabaseDSN)
	assert.Equal(t, 45*time.Second, time.Duration(jc.HealthCheckInterval.Duration))
}

func TestParseJson_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server_base_url":"http://cfg:1234"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"prism", "-c", path}
	defer func() { os.Args = oldArgs }()

	var cfg Config
	cfg.LoadDefaults()
	parseJson(&cfg)

	assert.Equal(t, "http://cfg:1234", cfg.ServerBaseURL)
	assert.Equal(t, "prism.db", cfg.DatabaseDSN, "absent key keeps default")
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"prism", "-a", "http://flag:8000", "-i", "10"}
	defer func() { os.Args = oldArgs }()

	var cfg Config
	cfg.LoadDefaults()
	parseFlags(&cfg)

	want := Config{
		ServerBaseURL:       "http://flag:8000",
		DatabaseDSN:         "prism.db",
		HealthCheckInterval: 10 * time.Second,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
