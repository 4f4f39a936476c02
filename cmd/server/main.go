package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"escuela/internal/app/server"
	"escuela/internal/app/server/config"
	"escuela/internal/utils/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf := config.MustLoad()
	log := logger.NewWriter(os.Stdout, conf.Env, conf.Logger.LogLevel)

	app, err := server.New(ctx, conf, log)
	if err != nil {
		log.Error("failed to start", logger.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Error("failed to close storage", logger.Err(err))
		}
	}()

	if err := app.Run(ctx); err != nil {
		log.Error("server stopped", logger.Err(err))
		return
	}
	log.Info("server stopped")
}
