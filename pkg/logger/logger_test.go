package logger_test

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/rowpipe/rowpipe/pkg/logger"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.New("test", "debug").IsDebug())
	assert.False(t, logger.New("test", "warn").IsInfo())
	assert.True(t, logger.New("test", "").IsInfo())
	assert.True(t, logger.New("test", "nonsense").IsInfo())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ROWPIPE_LOG_LEVEL", "trace")

	log := logger.FromEnv("test")
	assert.True(t, log.IsTrace())
	assert.IsType(t, hclog.New(nil), log)
}
