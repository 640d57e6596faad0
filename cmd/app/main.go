package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"weatherreminder.app/internal/adapters/infrastructure"
	"weatherreminder.app/internal/app"
	"weatherreminder.app/internal/config"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(infrastructure.NewSlogHandler(os.Stdout, cfg.Log.Level, cfg.Log.Format)))
	slog.Info("Configuration loaded successfully",
		"port", cfg.Server.Port,
		"baseURL", cfg.AppBaseURL,
		"database", cfg.Database.Driver,
		"cache", cfg.Cache.Type.String(),
		"lock", cfg.Lock.Type.String(),
		"schedulerEnabled", cfg.Scheduler.Enabled,
		"timezone", cfg.Scheduler.Timezone)

	application, err := app.NewApplication(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting Weather Reminder...")
		errCh <- application.Start(ctx)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal...")
	case err := <-errCh:
		if err != nil {
			slog.Error("Application stopped with error", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	if err := application.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
		exitCode = 1
	}
	cancel()
	stop()

	os.Exit(exitCode)
}
