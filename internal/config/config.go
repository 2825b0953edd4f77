// Package config loads application settings from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service. It is constructed once at
// process start and passed by reference to the components that need it.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Provider ProviderConfig
	Database DatabaseConfig

	Environment string
	LogLevel    string
}

// ServerConfig holds the HTTP listener configuration.
type ServerConfig struct {
	Host string
	Port int
}

// AuthConfig holds the API key allow-list.
type AuthConfig struct {
	APIKeys []string
}

// ProviderConfig holds translation provider configuration.
type ProviderConfig struct {
	Name          string
	Credentials   string
	MyMemoryEmail string
	Timeout       time.Duration
	MaxTextLength int
}

// DatabaseConfig holds the translation history database configuration.
// An empty path disables history recording.
type DatabaseConfig struct {
	Path string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("TRANSLATION_PROVIDER", "google")
	viper.SetDefault("PROVIDER_TIMEOUT", "30s")
	viper.SetDefault("MAX_TEXT_LENGTH", 5000)
	viper.SetDefault("DATABASE_URL", "sqlite:///./translations.db")

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("HOST"),
			Port: viper.GetInt("PORT"),
		},
		Auth: AuthConfig{
			APIKeys: splitKeys(viper.GetString("API_KEY")),
		},
		Provider: ProviderConfig{
			Name:          viper.GetString("TRANSLATION_PROVIDER"),
			Credentials:   viper.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
			MyMemoryEmail: viper.GetString("MYMEMORY_EMAIL"),
			Timeout:       viper.GetDuration("PROVIDER_TIMEOUT"),
			MaxTextLength: viper.GetInt("MAX_TEXT_LENGTH"),
		},
		Database: DatabaseConfig{
			Path: sqlitePath(viper.GetString("DATABASE_URL")),
		},
		Environment: viper.GetString("ENVIRONMENT"),
		LogLevel:    viper.GetString("LOG_LEVEL"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("API_KEY is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("PORT must be in range 1-65535, got %d", c.Server.Port)
	}
	if c.Provider.Timeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}
	if c.Provider.MaxTextLength <= 0 {
		return fmt.Errorf("MAX_TEXT_LENGTH must be positive")
	}
	switch c.Provider.Name {
	case "google", "mymemory":
	default:
		return fmt.Errorf("unknown TRANSLATION_PROVIDER: %s", c.Provider.Name)
	}
	return nil
}

// splitKeys parses a comma-separated API key list, dropping empty entries.
func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// sqlitePath strips the sqlite URL scheme used by the deployment tooling,
// leaving a plain filesystem path for database/sql.
func sqlitePath(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, prefix := range []string{"sqlite:///", "sqlite://"} {
		if strings.HasPrefix(raw, prefix) {
			return strings.TrimPrefix(raw, prefix)
		}
	}
	return raw
}
