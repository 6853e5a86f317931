package logging

import (
	"strings"

	"TxVisualizer/internal/platform/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger from config and installs it as the zap
// global. DEPLOYMENT_MODE=devel switches to the human-readable encoder.
func New(cfg config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.DeploymentMode == "devel" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.LogLevel))

	logger, err := zc.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func ParseLevel(s string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return zapcore.InfoLevel
	}
	return level
}
