package config

import (
	"fmt"
	"strings"
)

// AppConfig contains the settings shared by everything that logs.
type AppConfig struct {
	Name        string `envconfig:"NAME" default:"guard" validate:"required"`
	Version     string `envconfig:"VERSION" default:"dev" validate:"required"`
	Environment string `envconfig:"ENV" default:"development" validate:"oneof=development staging production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=json text"`
}

// Validate performs the checks the struct tags cannot express.
func (a *AppConfig) Validate() error {
	if strings.TrimSpace(a.Name) != a.Name {
		return fmt.Errorf("app name cannot contain leading or trailing whitespace")
	}
	if strings.ContainsAny(a.Name, " \t\n") {
		return fmt.Errorf("app name cannot contain whitespace, got %q", a.Name)
	}
	return nil
}

// IsProduction reports whether the app runs in the production environment.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}
