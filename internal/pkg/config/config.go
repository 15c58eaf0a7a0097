// internal/pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Application
	App AppConfig

	// Console
	Console ConsoleConfig
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	Name        string
	Environment string // development, test, production
	Version     string
	LogLevel    string
	LogFormat   string // json, text
	LogOutput   string // stdout, stderr, file:<path>
}

// ConsoleConfig holds interactive console configuration
type ConsoleConfig struct {
	Prompt string
	Color  bool
}

// Load loads configuration from environment variables and, when configFile
// is not empty, from that file. Environment variables win over the file.
func Load(logger *slog.Logger, configFile string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	env := v.GetString("app.env")

	// Load .env file in development
	if env == "development" || env == "local" {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file found, using environment variables",
				slog.String("error", err.Error()))
		} else {
			logger.Debug(".env file loaded successfully")
			env = v.GetString("app.env")
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		logger.Debug("config file loaded", slog.String("file", v.ConfigFileUsed()))
		env = v.GetString("app.env")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: env,
			Version:     v.GetString("app.version"),
			LogLevel:    strings.ToLower(v.GetString("log.level")),
			LogFormat:   strings.ToLower(v.GetString("log.format")),
			LogOutput:   v.GetString("log.output"),
		},
		Console: ConsoleConfig{
			Prompt: v.GetString("console.prompt"),
			Color:  v.GetBool("console.color"),
		},
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error
	for _, validator := range []Validator{&BasicValidator{}, &LoggingValidator{}} {
		if err := validator.Validate(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development" || c.App.Environment == "local"
}

// Helper functions

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "stockroom")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.version", "dev")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("console.prompt", "> ")
	v.SetDefault("console.color", true)
}
