package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpipe/rowpipe/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ROWPIPE_LOG_LEVEL", "")
	t.Setenv("ROWPIPE_TASKS", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "tasks.json", cfg.TasksFile)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ROWPIPE_LOG_LEVEL", "debug")
	t.Setenv("ROWPIPE_TASKS", "/etc/rowpipe/tasks.json")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/rowpipe/tasks.json", cfg.TasksFile)
}
