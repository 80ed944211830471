package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv isolates a test from the host environment and any .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "TA_PORT", "TA_HEALTH_PORT", "TA_READ_TIMEOUT",
		"TA_WRITE_TIMEOUT", "TA_SHUTDOWN_TIMEOUT", "TA_RATE_LIMIT_RPS", "TA_CACHE_SIZE",
		"TA_MAX_BARS", "TA_CANDLE_SETTINGS_FILE", "TA_INDICATORS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8094, cfg.Server.Port)
	assert.Equal(t, 8095, cfg.Server.HealthCheckPort)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 100, cfg.Server.RateLimitRPS)
	assert.Equal(t, 1024, cfg.Engine.CacheSize)
	assert.Equal(t, 100000, cfg.Engine.MaxBars)
	assert.Empty(t, cfg.Engine.CandleSettingsFile)
	assert.Empty(t, cfg.Engine.Indicators)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TA_PORT", "9000")
	t.Setenv("TA_WRITE_TIMEOUT", "3s")
	t.Setenv("TA_CACHE_SIZE", "0")
	t.Setenv("TA_INDICATORS", "ema, cdlhammer ,,MAXINDEX")
	t.Setenv("TA_CANDLE_SETTINGS_FILE", "/etc/ta/candles.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 0, cfg.Engine.CacheSize)
	assert.Equal(t, []string{"EMA", "CDLHAMMER", "MAXINDEX"}, cfg.Engine.Indicators)
	assert.Equal(t, "/etc/ta/candles.yaml", cfg.Engine.CandleSettingsFile)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("TA_PORT", "eighty")
	t.Setenv("TA_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8094, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel: "info",
			Server:   ServerConfig{Port: 8094, HealthCheckPort: 8095, RateLimitRPS: 10},
			Engine:   EngineConfig{CacheSize: 10, MaxBars: 1000},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "trace" }},
		{"port", func(c *Config) { c.Server.Port = 0 }},
		{"health port", func(c *Config) { c.Server.HealthCheckPort = 70000 }},
		{"same ports", func(c *Config) { c.Server.HealthCheckPort = c.Server.Port }},
		{"rate limit", func(c *Config) { c.Server.RateLimitRPS = 0 }},
		{"cache size", func(c *Config) { c.Engine.CacheSize = -1 }},
		{"max bars", func(c *Config) { c.Engine.MaxBars = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
