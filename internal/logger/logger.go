package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-api/internal/config"
)

// New builds a JSON production logger for the "production" environment and
// a console development logger otherwise. cfg.LogLevel overrides the level.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zcfg.Level = level
	}

	logger, err := zcfg.Build(zap.Fields(zap.String("env", cfg.Env)))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
