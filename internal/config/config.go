// Package config reads application settings from environment variables
// (which may be populated from a .env file at startup).
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of the rowpipe command.
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error.
	LogLevel string `env:"ROWPIPE_LOG_LEVEL" envDefault:"info"`
	// TasksFile is the default task file used when --tasks is not given.
	TasksFile string `env:"ROWPIPE_TASKS" envDefault:"tasks.json"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
