package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-merge-api/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort        string
	LogLevel          string
	LogFormat         string
	MaxRequestSize    int64
	MergeTimeout      time.Duration
	ShutdownTimeout   time.Duration
	PDFValidationMode string
	AllowedOrigins    []string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:        getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:         getEnvOrDefault("LOG_FORMAT", "text"),
		MaxRequestSize:    getEnvInt64OrDefault("MAX_REQUEST_SIZE", 1024*1024), // 1MB default
		MergeTimeout:      getEnvDurationOrDefault("MERGE_TIMEOUT", 0),
		ShutdownTimeout:   getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		PDFValidationMode: getEnvOrDefault("PDF_VALIDATION_MODE", "relaxed"),
		AllowedOrigins: getEnvListOrDefault("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:3000",
		}),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetLogFormat returns the log output format
func (c *AppConfig) GetLogFormat() string {
	return c.LogFormat
}

// GetMaxRequestSize returns the maximum accepted request body size
func (c *AppConfig) GetMaxRequestSize() int64 {
	return c.MaxRequestSize
}

// GetMergeTimeout returns the per-request merge timeout; zero disables it
func (c *AppConfig) GetMergeTimeout() time.Duration {
	return c.MergeTimeout
}

// GetShutdownTimeout returns how long in-flight requests get on shutdown
func (c *AppConfig) GetShutdownTimeout() time.Duration {
	return c.ShutdownTimeout
}

// GetPDFValidationMode returns the PDF validation mode
func (c *AppConfig) GetPDFValidationMode() string {
	return c.PDFValidationMode
}

// GetAllowedOrigins returns the CORS allowed origins
func (c *AppConfig) GetAllowedOrigins() []string {
	return c.AllowedOrigins
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
