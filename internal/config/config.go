// Package config provides environment-sourced application
// configuration.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultModelName  = "gemini-2.5-flash-preview-09-2025"
	DefaultSessionTTL = 24 * time.Hour
)

type Config struct {
	Port           string
	Environment    string
	LogLevel       slog.Level
	ModelName      string
	GeminiAPIKey   string
	RedisURL       string
	SessionTTL     time.Duration
	AllowedOrigins []string
}

// Load reads configuration from the environment, after merging in a
// .env file when one is present. A missing API key is not an error;
// it selects the canned gateway mode.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       parseLogLevel(getEnv("LOG_LEVEL", "info")),
		ModelName:      getEnv("MODEL", DefaultModelName),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		RedisURL:       getEnv("REDIS_URL", ""),
		SessionTTL:     parseDuration(getEnv("SESSION_TTL", ""), DefaultSessionTTL),
		AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

// MockMode reports whether the gateway must run without the live
// model capability.
func (c *Config) MockMode() bool {
	return c.GeminiAPIKey == ""
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
