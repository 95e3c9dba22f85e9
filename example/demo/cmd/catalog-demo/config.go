package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the demo configuration, parsed from environment variables.
type Config struct {
	LogLevel       string `env:"LOG_LEVEL" envDefault:"debug"`
	JournalEnabled bool   `env:"JOURNAL_ENABLED" envDefault:"true"`
}

// ParseConfig loads the demo configuration from the environment.
func ParseConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps the configured log level string to a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
