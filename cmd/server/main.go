package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minipress/minipress/internal/api"
	"github.com/minipress/minipress/internal/infrastructure/config"
	"github.com/minipress/minipress/internal/infrastructure/db/sqlite"
	"github.com/minipress/minipress/pkg/logger"
)

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.Connect(context.Background(), sqlite.Config{Path: cfg.SQLite.Path})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("failed to open store")
	}
	defer db.Close()

	e, err := api.NewRouter(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("db", cfg.SQLite.Path).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
