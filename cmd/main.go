package main

import (
	"github.com/andreyminyukevich-create/tg-expenses-bot/config"
	"github.com/andreyminyukevich-create/tg-expenses-bot/internal/app"
	"github.com/andreyminyukevich-create/tg-expenses-bot/pkg/logger"
)

func main() {
	cfg := config.Get()

	logger := logger.New(logger.Options{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
	})

	app.Run(cfg, logger)
}
