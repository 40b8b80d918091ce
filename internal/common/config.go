package common

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"

	"github.com/ternarybob/placesbridge/internal/interfaces"
	"github.com/ternarybob/placesbridge/internal/models"
)

// PlacesAPIKeyName is the key store entry holding the places web service key
const PlacesAPIKeyName = "google_places_api_key"

// Config represents the application configuration
type Config struct {
	Environment string          `toml:"environment"` // "development" or "production"
	Server      ServerConfig    `toml:"server"`
	Storage     StorageConfig   `toml:"storage"`
	Logging     LoggingConfig   `toml:"logging"`
	PlacesAPI   PlacesAPIConfig `toml:"places_api"`
	Bridge      BridgeConfig    `toml:"bridge"`
	WebSocket   WebSocketConfig `toml:"websocket"`
}

type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

type StorageConfig struct {
	Badger BadgerConfig `toml:"badger"`
}

// BadgerConfig represents BadgerDB-specific configuration
type BadgerConfig struct {
	Path           string `toml:"path"`             // Database directory path
	ResetOnStartup bool   `toml:"reset_on_startup"` // Delete database on startup for clean test runs
	InMemory       bool   `toml:"in_memory"`        // Keep keys in memory only (nothing written to Path)
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05")
	FileName   string   `toml:"file_name"`   // Log file name under ./logs next to the executable
}

// PlacesAPIConfig contains Google Places API configuration
type PlacesAPIConfig struct {
	APIKey         string `toml:"api_key"`         // Google Places API key (env and key store take precedence)
	Language       string `toml:"language"`        // Default result language, overridden by initialize locale
	Region         string `toml:"region"`          // Default region bias, overridden by initialize locale
	BaseURL        string `toml:"base_url"`        // Web service base URL
	RateLimit      string `toml:"rate_limit"`      // Minimum time between API requests ("0s" disables)
	RequestTimeout string `toml:"request_timeout"` // HTTP request timeout
}

// BridgeConfig controls the method channel dispatcher
type BridgeConfig struct {
	AutoInitialize bool `toml:"auto_initialize"` // Initialize with the resolved API key at startup
}

// WebSocketConfig contains configuration for the channel socket
type WebSocketConfig struct {
	ReadLimit    int64  `toml:"read_limit"`    // Maximum inbound frame size in bytes
	WriteTimeout string `toml:"write_timeout"` // Deadline for each outbound frame
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Port: 8086,
			Host: "localhost",
		},
		Storage: StorageConfig{
			Badger: BadgerConfig{
				Path: "./data",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			Output:     []string{"stdout", "file"},
			TimeFormat: "15:04:05",
			FileName:   "placesbridge.log",
		},
		PlacesAPI: PlacesAPIConfig{
			APIKey:         "", // User must provide API key
			BaseURL:        "https://maps.googleapis.com",
			RateLimit:      "100ms",
			RequestTimeout: "30s",
		},
		Bridge: BridgeConfig{
			AutoInitialize: false,
		},
		WebSocket: WebSocketConfig{
			ReadLimit:    64 * 1024,
			WriteTimeout: "10s",
		},
	}
}

// LoadFromFiles loads configuration from multiple files with priority: default -> file1 -> file2 -> ... -> env
// Later files override earlier files. CLI flags are applied afterwards with ApplyFlagOverrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		// Unmarshal into config (merges with existing values, later values override)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies PLACESBRIDGE_* environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("PLACESBRIDGE_ENV"); env != "" {
		config.Environment = env
	}

	// Server configuration
	if port := os.Getenv("PLACESBRIDGE_SERVER_PORT"); port != "" {
		if p, err := cast.ToIntE(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("PLACESBRIDGE_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}

	// Storage configuration
	if badgerPath := os.Getenv("PLACESBRIDGE_BADGER_PATH"); badgerPath != "" {
		config.Storage.Badger.Path = badgerPath
	}
	if inMemory := os.Getenv("PLACESBRIDGE_BADGER_IN_MEMORY"); inMemory != "" {
		if b, err := cast.ToBoolE(inMemory); err == nil {
			config.Storage.Badger.InMemory = b
		}
	}

	// Logging configuration
	if level := os.Getenv("PLACESBRIDGE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("PLACESBRIDGE_LOG_OUTPUT"); output != "" {
		outputs := []string{}
		for _, o := range strings.Split(output, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Places API configuration (the key itself is resolved by ResolveAPIKey)
	if language := os.Getenv("PLACESBRIDGE_PLACES_LANGUAGE"); language != "" {
		config.PlacesAPI.Language = language
	}
	if region := os.Getenv("PLACESBRIDGE_PLACES_REGION"); region != "" {
		config.PlacesAPI.Region = region
	}
	if baseURL := os.Getenv("PLACESBRIDGE_PLACES_BASE_URL"); baseURL != "" {
		config.PlacesAPI.BaseURL = baseURL
	}
	if rateLimit := os.Getenv("PLACESBRIDGE_PLACES_RATE_LIMIT"); rateLimit != "" {
		config.PlacesAPI.RateLimit = rateLimit
	}

	// Bridge configuration
	if autoInit := os.Getenv("PLACESBRIDGE_AUTO_INITIALIZE"); autoInit != "" {
		if b, err := cast.ToBoolE(autoInit); err == nil {
			config.Bridge.AutoInitialize = b
		}
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config
func ApplyFlagOverrides(config *Config, port int, host string) {
	// Command-line flags have highest priority
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks that duration settings parse
func (c *Config) Validate() error {
	for name, value := range map[string]string{
		"places_api.rate_limit":      c.PlacesAPI.RateLimit,
		"places_api.request_timeout": c.PlacesAPI.RequestTimeout,
		"websocket.write_timeout":    c.WebSocket.WriteTimeout,
	} {
		if value == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", name, value, err)
		}
	}
	return nil
}

// RateLimitInterval returns the minimum interval between places requests
func (c *PlacesAPIConfig) RateLimitInterval() time.Duration {
	return parseDuration(c.RateLimit, 0)
}

// Timeout returns the places HTTP request timeout
func (c *PlacesAPIConfig) Timeout() time.Duration {
	return parseDuration(c.RequestTimeout, 30*time.Second)
}

// DefaultLocale returns the configured language and region, or nil when neither is set
func (c *PlacesAPIConfig) DefaultLocale() *models.Locale {
	if c.Language == "" && c.Region == "" {
		return nil
	}
	return &models.Locale{Language: c.Language, Country: c.Region}
}

// WriteDeadline returns the per-frame write timeout for the channel socket
func (c *WebSocketConfig) WriteDeadline() time.Duration {
	return parseDuration(c.WriteTimeout, 10*time.Second)
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

// ResolveAPIKey resolves an API key by name with environment variable priority
// Resolution order: environment variables → KV store → config fallback → error
func ResolveAPIKey(ctx context.Context, kvStorage interfaces.KeyValueStorage, name string, configFallback string) (string, error) {
	keyToEnvMapping := map[string][]string{
		PlacesAPIKeyName: {"PLACESBRIDGE_PLACES_API_KEY", "GOOGLE_PLACES_API_KEY"},
	}

	if envVarNames, hasMappedEnv := keyToEnvMapping[name]; hasMappedEnv {
		for _, envVarName := range envVarNames {
			if envValue := os.Getenv(envVarName); envValue != "" {
				return envValue, nil
			}
		}
	}

	if kvStorage != nil {
		apiKey, err := kvStorage.Get(ctx, name)
		if err == nil && apiKey != "" {
			return apiKey, nil
		}
	}

	if configFallback != "" {
		return configFallback, nil
	}

	return "", fmt.Errorf("API key '%s' not found in environment, KV store, or config", name)
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
