// internal/pkg/config/validators.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingRequiredConfig is returned when a required setting is empty
var ErrMissingRequiredConfig = errors.New("missing required configuration")

// ErrInvalidConfigValue is returned when a setting holds an unsupported value
var ErrInvalidConfigValue = errors.New("invalid configuration value")

// Validator checks one aspect of the configuration
type Validator interface {
	Validate(cfg *Config) error
}

// BasicValidator performs basic configuration validation
type BasicValidator struct{}

// Validate performs basic validation
func (v *BasicValidator) Validate(cfg *Config) error {
	if cfg.App.Name == "" {
		return fmt.Errorf("%w: app name", ErrMissingRequiredConfig)
	}
	if cfg.App.Environment == "" {
		return fmt.Errorf("%w: app environment", ErrMissingRequiredConfig)
	}
	return nil
}

// LoggingValidator validates logger settings
type LoggingValidator struct{}

// Validate performs logging validation
func (v *LoggingValidator) Validate(cfg *Config) error {
	switch cfg.App.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfigValue, cfg.App.LogLevel)
	}

	switch cfg.App.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfigValue, cfg.App.LogFormat)
	}

	output := cfg.App.LogOutput
	switch {
	case output == "stdout", output == "stderr":
	case strings.HasPrefix(output, "file:") && len(output) > len("file:"):
	default:
		return fmt.Errorf("%w: log output %q", ErrInvalidConfigValue, output)
	}

	return nil
}
