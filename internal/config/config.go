package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Common
	Environment string
	LogLevel    string

	Server ServerConfig
	Engine EngineConfig
}

// ServerConfig holds the HTTP surface configuration
type ServerConfig struct {
	Port            int
	HealthCheckPort int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimitRPS    int
}

// EngineConfig holds computation engine configuration
type EngineConfig struct {
	CacheSize          int      // Result cache entries, 0 disables the cache
	MaxBars            int      // Longest series accepted per request
	CandleSettingsFile string   // Optional YAML file with candle setting overrides
	Indicators         []string // Indicators to expose (empty = all)
}

// Load loads configuration from environment variables
// It automatically loads .env file if it exists in the current directory
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Port:            getEnvAsInt("TA_PORT", 8094),
			HealthCheckPort: getEnvAsInt("TA_HEALTH_PORT", 8095),
			ReadTimeout:     getEnvAsDuration("TA_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvAsDuration("TA_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getEnvAsDuration("TA_SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimitRPS:    getEnvAsInt("TA_RATE_LIMIT_RPS", 100),
		},
		Engine: EngineConfig{
			CacheSize:          getEnvAsInt("TA_CACHE_SIZE", 1024),
			MaxBars:            getEnvAsInt("TA_MAX_BARS", 100000),
			CandleSettingsFile: getEnv("TA_CANDLE_SETTINGS_FILE", ""),
			Indicators:         getEnvAsStringSlice("TA_INDICATORS", []string{}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error")
	}
	if !validPort(c.Server.Port) {
		return fmt.Errorf("TA_PORT must be between 1 and 65535")
	}
	if !validPort(c.Server.HealthCheckPort) {
		return fmt.Errorf("TA_HEALTH_PORT must be between 1 and 65535")
	}
	if c.Server.Port == c.Server.HealthCheckPort {
		return fmt.Errorf("TA_PORT and TA_HEALTH_PORT must differ")
	}
	if c.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("TA_RATE_LIMIT_RPS must be positive")
	}
	if c.Engine.CacheSize < 0 {
		return fmt.Errorf("TA_CACHE_SIZE cannot be negative")
	}
	if c.Engine.MaxBars <= 0 {
		return fmt.Errorf("TA_MAX_BARS must be positive")
	}
	return nil
}

func validPort(port int) bool {
	return port > 0 && port <= 65535
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

func getEnvAsStringSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Split by comma and trim spaces
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.ToUpper(strings.TrimSpace(part))
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
