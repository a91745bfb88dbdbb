package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "test")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5, cfg.Source.ProbeRadius)
	assert.Equal(t, 5, cfg.Fetch.MaxAttempts)
	assert.Equal(t, 600*time.Millisecond, cfg.Fetch.BackoffBase)
	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 2.0, cfg.Fetch.RequestsPerSecond)
	assert.Equal(t, "data/draws.json", cfg.Storage.OutputPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "test")
	t.Setenv("MIRROR_URL", "https://example.com/results/all.json")
	t.Setenv("INCREMENTAL_URL", "https://example.com/draw")
	t.Setenv("PROBE_RADIUS", "3")
	t.Setenv("FETCH_MAX_ATTEMPTS", "7")
	t.Setenv("FETCH_BACKOFF_BASE", "250ms")
	t.Setenv("OUTPUT_PATH", "out/results.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/results/all.json", cfg.Source.MirrorURL)
	assert.Equal(t, "https://example.com/draw", cfg.Source.IncrementalURL)
	assert.Equal(t, 3, cfg.Source.ProbeRadius)
	assert.Equal(t, 7, cfg.Fetch.MaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Fetch.BackoffBase)
	assert.Equal(t, "out/results.json", cfg.Storage.OutputPath)
	assert.Equal(t, "debug", cfg.App.LogLevel)
}

func TestLoad_MissingSourceURLs(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "development")
	t.Setenv("MIRROR_URL", "")
	t.Setenv("INCREMENTAL_URL", "")

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_TestEnvironmentSkipsValidation(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "test")
	t.Setenv("MIRROR_URL", "")
	t.Setenv("INCREMENTAL_URL", "")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestNewTestConfig(t *testing.T) {
	cfg := NewTestConfig()

	assert.Equal(t, "test", cfg.App.Environment)
	assert.GreaterOrEqual(t, cfg.Fetch.MaxAttempts, 1)
	assert.Greater(t, cfg.Fetch.RequestsPerSecond, 0.0)
	assert.NotEmpty(t, cfg.Source.MirrorURL)
	assert.NotEmpty(t, cfg.Source.IncrementalURL)
}

func TestAppConfig_EnvironmentChecks(t *testing.T) {
	dev := AppConfig{Environment: "development"}
	prod := AppConfig{Environment: "production"}

	assert.True(t, dev.IsDevelopment())
	assert.False(t, dev.IsProduction())
	assert.True(t, prod.IsProduction())
	assert.False(t, prod.IsDevelopment())
}
