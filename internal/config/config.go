package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the emulator service configuration. Environment
// variables are parsed from the CONECTA_ prefix.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Storage. DBDriver "auto" picks postgres when a DSN is set,
	// sqlite otherwise.
	DBDriver    string `envconfig:"DB_DRIVER" default:"auto"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"data/conecta.db"`
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// File uploads
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"data/uploads"`
	PublicBaseURL string `envconfig:"PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

// New loads configuration from the environment and resolves derived
// defaults.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("CONECTA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveDefaults derives DBDriver when set to "auto" or empty and
// validates the final value.
func (c *Config) ResolveDefaults() error {
	if c.DBDriver == "" || c.DBDriver == "auto" {
		if c.PostgresDSN != "" {
			c.DBDriver = "postgres"
		} else {
			c.DBDriver = "sqlite"
		}
	}
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %s", c.DBDriver)
	}
	if c.DBDriver == "postgres" && c.PostgresDSN == "" {
		return fmt.Errorf("DB_DRIVER=postgres requires POSTGRES_DSN")
	}
	return nil
}
