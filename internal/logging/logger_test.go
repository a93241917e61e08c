package logging

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
	assert.NotNil(t, Logger.logger)
}

func TestInitLogger_WithLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.True(t, Logger.Zap().Core().Enabled(zap.DebugLevel))
}

func TestInitLogger_WithInvalidLogLevel(t *testing.T) {
	os.Setenv("LOG_LEVEL", "invalid")
	defer os.Unsetenv("LOG_LEVEL")

	err := InitLogger()
	require.NoError(t, err)
	assert.NotNil(t, Logger)
	assert.False(t, Logger.Zap().Core().Enabled(zap.DebugLevel))
}

func TestSafeLogger_WritesThroughWrappedLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := New(zap.New(core))

	logger.Debug("debug message")
	logger.Info("info message", zap.String("key", "value"))
	logger.Warn("warn message")
	logger.Error("error message")

	require.Equal(t, 4, logs.Len())
	assert.Equal(t, "info message", logs.All()[1].Message)
	assert.Equal(t, "value", logs.All()[1].ContextMap()["key"])
}

func TestSafeLogger_WithAndNamed(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := New(zap.New(core)).Named("criancas").With(zap.String("crianca_id", "abc"))

	logger.Info("created")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "criancas", entry.LoggerName)
	assert.Equal(t, "abc", entry.ContextMap()["crianca_id"])
}

func TestSafeLogger_NilLogger(t *testing.T) {
	logger := &SafeLogger{logger: nil}

	logger.Info("test")
	logger.Warn("test")
	logger.Debug("test")
	logger.Error("test")
	assert.NotNil(t, logger.With(zap.String("k", "v")))
	assert.NotNil(t, logger.Named("x"))
	assert.NotNil(t, logger.Zap())
	assert.NoError(t, logger.Sync())

	var nilLogger *SafeLogger
	nilLogger.Info("still safe")
}
