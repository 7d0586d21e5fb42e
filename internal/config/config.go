// Package config reads runtime configuration from environment variables.
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	AppAddr         string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout  time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"30s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// DBPath is the SQLite database file. Use ":memory:" for tests.
	DBPath string `envconfig:"DB_PATH" default:"khata.db"`

	// DataDir holds uploaded assets (shop logo).
	DataDir string `envconfig:"DATA_DIR" default:"data"`

	JWTSecret      string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
	AccessTokenTTL time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"12h"`

	// Default admin credentials seeded on boot.
	AdminUsername string `envconfig:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
