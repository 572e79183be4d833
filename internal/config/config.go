// Package config loads process configuration from the environment.
// It uses envconfig for loading and validator for the declarative checks.
package config

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"github.com/rafaeljc/guard/internal/guard"
)

// Prefix is prepended to every environment variable name.
const Prefix = "GUARD"

const (
	// EnvironmentProduction is the production environment identifier
	EnvironmentProduction = "production"
)

// Config holds the complete configuration.
type Config struct {
	App AppConfig `envconfig:"APP"`
}

// Load reads configuration from GUARD_* environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate runs the struct tag rules, then the custom checks of each section.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if err := c.App.Validate(); err != nil {
		return err
	}

	return nil
}

// LogConfig logs the loaded configuration.
func (c *Config) LogConfig(log *slog.Logger) {
	guard.AssertNotNil(log, "logger")

	log.Info("configuration loaded",
		slog.String("app_name", c.App.Name),
		slog.String("version", c.App.Version),
		slog.String("environment", c.App.Environment),
		slog.String("log_level", c.App.LogLevel),
		slog.String("log_format", c.App.LogFormat),
	)
}
