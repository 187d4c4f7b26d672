// Package logger builds the hclog loggers used across the toolkit.
package logger

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

const levelEnvVar = "ROWPIPE_LOG_LEVEL"

// New returns a named logger at the given level. Unknown level strings
// fall back to info.
func New(name, level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: parseLevel(level),
	})
}

// FromEnv returns a named logger whose level comes from the
// ROWPIPE_LOG_LEVEL environment variable.
func FromEnv(name string) hclog.Logger {
	return New(name, os.Getenv(levelEnvVar))
}

func parseLevel(level string) hclog.Level {
	if level == "" {
		return hclog.Info
	}
	if parsed := hclog.LevelFromString(level); parsed != hclog.NoLevel {
		return parsed
	}
	return hclog.Info
}
