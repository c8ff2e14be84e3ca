// Package main provides the API server entry point.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stkrizh/conduit/internal/config"
	"github.com/stkrizh/conduit/internal/infrastructure/httpserver"
)

// Shutdown constants.
const (
	gracefulShutdownSleep = 100 * time.Millisecond
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		//nolint:sloglint // No context available before logger setup
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := setupLogger(cfg)

	logger.Info("starting conduit API server",
		slog.String("version", "0.1.0"),
		slog.String("environment", getEnvironment(cfg)),
	)

	container, err := NewContainer(cfg, WithLogger(logger))
	if err != nil {
		logger.Error("failed to build container", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := SetupRoutes(container)

	go gracefulShutdown(ctx, cancel, server, container, logger)

	logger.Info("server listening",
		slog.String("address", cfg.Server.Address()),
		slog.Duration("read_timeout", cfg.Server.ReadTimeout),
		slog.Duration("write_timeout", cfg.Server.WriteTimeout),
	)

	if serverErr := server.Start(); serverErr != nil {
		logger.Error("server error", slog.String("error", serverErr.Error()))
		cancel()
		_ = container.Close()
		os.Exit(1)
	}
}

// setupLogger creates and configures the structured logger based on configuration.
func setupLogger(cfg *config.Config) *slog.Logger {
	level := parseLogLevel(cfg.Log.Level)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.IsDevelopment(),
	}

	var handler slog.Handler
	switch cfg.Log.Format {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default: // "json" or any other value defaults to JSON
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnvironment returns the environment name based on configuration.
func getEnvironment(cfg *config.Config) string {
	if cfg.IsDevelopment() {
		return "development"
	}
	if cfg.IsProduction() {
		return "production"
	}
	return "unknown"
}

// gracefulShutdown handles graceful shutdown on OS signals.
func gracefulShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	server *httpserver.Server,
	container *Container,
	logger *slog.Logger,
) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	shutdownLogCtx := context.Background()

	select {
	case sig := <-quit:
		logger.InfoContext(shutdownLogCtx, "received shutdown signal", slog.String("signal", sig.String()))
	case <-ctx.Done():
		logger.InfoContext(shutdownLogCtx, "context cancelled, initiating shutdown")
	}

	logger.InfoContext(shutdownLogCtx, "shutting down server...")

	if err := server.Shutdown(context.Background()); err != nil {
		logger.ErrorContext(shutdownLogCtx, "server shutdown error", slog.String("error", err.Error()))
	} else {
		logger.InfoContext(shutdownLogCtx, "HTTP server stopped")
	}

	cancel()

	// Give in-flight request logging a moment to flush
	time.Sleep(gracefulShutdownSleep)

	if err := container.Close(); err != nil {
		logger.ErrorContext(shutdownLogCtx, "container close error", slog.String("error", err.Error()))
	}

	logger.InfoContext(shutdownLogCtx, "server shutdown complete")
}
