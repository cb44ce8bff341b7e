package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Broker    BrokerConfig
	Providers ProviderConfig
	Sync      SyncConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// BrokerConfig holds position-source configuration. FernetKey is the
// base64-encoded key used to encrypt broker API credentials at rest;
// syncing live positions is disabled when it is empty.
type BrokerConfig struct {
	BaseURL   string
	FernetKey string
	Enabled   bool
}

// ProviderConfig holds API keys for the external dividend-data providers.
// Providers with an empty key are left out of the resolver fallback chain.
type ProviderConfig struct {
	FMPAPIKey          string
	AlphaVantageAPIKey string
}

// SyncConfig holds the recurring sync schedule (robfig/cron spec format).
type SyncConfig struct {
	Schedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/dividend_tracker.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Broker: BrokerConfig{
			BaseURL:   getEnv("BROKER_BASE_URL", "https://live.trading212.com"),
			FernetKey: getEnv("FERNET_KEY", ""),
			Enabled:   getEnvBool("BROKER_SYNC_ENABLED", false),
		},
		Providers: ProviderConfig{
			FMPAPIKey:          getEnv("FMP_API_KEY", ""),
			AlphaVantageAPIKey: getEnv("ALPHAVANTAGE_API_KEY", ""),
		},
		Sync: SyncConfig{
			Schedule: getEnv("SYNC_SCHEDULE", "@every 15m"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
