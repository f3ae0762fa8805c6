package config_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripcraft/internal/config"
	"tripcraft/pkg/logger"
)

var Module = fx.Provide(provideConfig, provideLogger)

func provideConfig() (config.Config, error) {
	return config.Load()
}

func provideLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// stderr sync fails on some platforms; nothing to do about it
			_ = log.Sync()
			return nil
		},
	})
	return log, nil
}
