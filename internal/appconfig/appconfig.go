// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// EnvBaseURL names the environment variable holding the upstream base URL.
	EnvBaseURL = "FASTAPI_BASE_URL"
	// EnvAPIKey names the environment variable holding the upstream API key.
	EnvAPIKey = "FASTAPI_API_KEY"
	// defaultPort is the listen port used when the config omits one.
	defaultPort = "8080"
	// defaultRequestTimeout is the default timeout for outbound HTTP requests.
	defaultRequestTimeout = 30 * time.Second
)

// Config represents the top-level application configuration.
type Config struct {
	Port           string `json:"port,omitempty"`
	FastAPIBaseURL string `json:"fastapiBaseUrl,omitempty"`
	FastAPIAPIKey  string `json:"fastapiApiKey,omitempty"`
	AuthToken      string `json:"authToken,omitempty"`
	TimeoutSeconds int    `json:"timeoutSeconds,omitempty"`
	LogFile        string `json:"logFile,omitempty"`
	Debug          bool   `json:"debug"`
	ConfigPath     string `json:"-"`
}

// Addr returns the listen address for the HTTP server, applying the default port if not set.
func (c Config) Addr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = defaultPort
	}
	return ":" + strings.TrimPrefix(port, ":")
}

// RequestTimeout returns the timeout duration for outbound HTTP requests,
// falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "blogsmith-mcp.log"
}

// BaseURL resolves the upstream base URL: the configured value wins and the
// FASTAPI_BASE_URL environment variable is the fallback.
func (c Config) BaseURL() string {
	if v := strings.TrimSpace(c.FastAPIBaseURL); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(EnvBaseURL))
}

// APIKey resolves the upstream API key: the configured value wins and the
// FASTAPI_API_KEY environment variable is the fallback.
func (c Config) APIKey() string {
	if v := strings.TrimSpace(c.FastAPIAPIKey); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(EnvAPIKey))
}
