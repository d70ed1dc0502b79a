package server

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the upload service configuration
type Config struct {
	Addr                string
	UploadDir           string
	MaxUploadMB         int
	MaxConcurrentParses int
	RateLimitPerSecond  int
	RateLimitBurst      int
	LogLevel            string
	MetricsEnabled      bool
	Timezone            string
	MinInstructorLen    int
}

// LoadConfig reads configuration from environment variables
func LoadConfig() Config {
	return Config{
		Addr:                getEnv("JAKU_ADDR", ":5000"),
		UploadDir:           getEnv("JAKU_UPLOAD_DIR", "temp"),
		MaxUploadMB:         getEnvAsInt("JAKU_MAX_UPLOAD_MB", 10),
		MaxConcurrentParses: getEnvAsInt("JAKU_MAX_CONCURRENT_PARSES", 4),
		RateLimitPerSecond:  getEnvAsInt("JAKU_RATE_LIMIT_PER_SECOND", 10),
		RateLimitBurst:      getEnvAsInt("JAKU_RATE_LIMIT_BURST", 20),
		LogLevel:            getEnv("JAKU_LOG_LEVEL", "info"),
		MetricsEnabled:      getEnvAsBool("JAKU_METRICS_ENABLED", true),
		Timezone:            getEnv("JAKU_TIMEZONE", "Asia/Jakarta"),
		MinInstructorLen:    getEnvAsInt("JAKU_MIN_INSTRUCTOR_NAME_LEN", 6),
	}
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
