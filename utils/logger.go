package utils

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger builds a JSON logger in production and a console logger elsewhere
func NewLogger(env, level string) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if env == EnvProduction {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = lvl

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}
