package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"fyyur/internal/config"
	"fyyur/internal/logging"
	"fyyur/internal/migrations"
	"fyyur/internal/store"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		// The configured logger does not exist yet.
		logging.New(logging.Config{}).Fatal(err, "Invalid configuration")
	}

	logger := logging.New(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	logging.SetGlobalLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err, "Server stopped")
	}
}

func run(cfg *config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error(err, "Failed to close database")
		}
	}()

	if cfg.Startup.MigrateOnStart {
		if err := migrateUp(cfg.Database.URL); err != nil {
			return err
		}
		logger.Info("Migrations applied")
	}

	dataStore := store.New(db)

	if cfg.Startup.SeedDemoData {
		if err := bootstrapDemoData(ctx, dataStore, time.Now()); err != nil {
			return err
		}
	}

	handler, err := newHTTPHandler(cfg, dataStore)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Zerolog().Info().Str("addr", server.Addr).Msg("Fyyur listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("Server exited")
	return nil
}

func migrateUp(databaseURL string) error {
	runner, err := migrations.Open(databaseURL)
	if err != nil {
		return err
	}
	defer runner.Close()
	return runner.Up()
}
