package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Given: no config file and no environment overrides
	// When: loading the config
	conf, err := Load("")

	// Then: defaults are applied
	require.NoError(t, err)
	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, ":8080", conf.HTTP.Addr)
	assert.Equal(t, 5*time.Second, conf.HTTP.ShutdownTimeout)
	assert.False(t, conf.Telemetry.Enabled)
}

func TestLoad_FileAndEnv(t *testing.T) {
	// Given: a yaml file and an environment override
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "log-level: debug\nhttp:\n  addr: \":9090\"\ntelemetry:\n  enabled: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("HTTP_ADDR", ":7070")

	// When: loading the config
	conf, err := Load(path)

	// Then: the environment wins over the file, the file wins over defaults
	require.NoError(t, err)
	assert.Equal(t, "debug", conf.LogLevel)
	assert.Equal(t, ":7070", conf.HTTP.Addr)
	assert.True(t, conf.Telemetry.Enabled)
	assert.Equal(t, "otel-collector:4317", conf.Telemetry.Endpoint)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
