package logging

import (
	"testing"

	"TxVisualizer/internal/platform/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("chatty"))
}

func TestNew_InstallsGlobalLogger(t *testing.T) {
	logger, err := New(config.Config{LogLevel: "error", DeploymentMode: "devel"})
	require.NoError(t, err)
	defer zap.ReplaceGlobals(zap.NewNop())

	assert.Same(t, logger, zap.L())
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
