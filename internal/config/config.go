// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the web server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// LogLevel controls the minimum log level.
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LogFile, when set, receives a copy of every log line in a size-rotated
	// file next to stdout.
	LogFile string `env:"LOG_FILE"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// MaxBodyBytes caps form submissions.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// MigrateOnStart applies pending schema migrations before serving.
	MigrateOnStart bool `env:"MIGRATE_ON_START" envDefault:"true"`

	// ShowTimeZone is the IANA zone show start times are read in when
	// submitted without an offset, and displayed in.
	ShowTimeZone string `env:"SHOW_TIME_ZONE" envDefault:"UTC"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error naming any required variable that is not set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("config.Load: MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	cfg.CORSOrigins = trimAll(cfg.CORSOrigins)
	return cfg, nil
}

// trimAll trims each entry and drops the empty ones, so "a, b," yields [a b].
func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
