package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/workforce-hrms/admin-ui/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := slog.Default()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger = bootstrap.InitLogger(cfg.Log)

	logger.InfoContext(ctx, "starting hrms-admin",
		"addr", cfg.HTTP.Addr,
		"backend", cfg.Backend.BaseURL,
		"dev", cfg.IsDev)

	adapters := bootstrap.InitAdapters(ctx, cfg, logger)
	defer adapters.Close()

	services := bootstrap.InitServices(cfg, adapters, logger)

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})

	// Block until a shutdown signal arrives.
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	return bootstrap.ShutdownHTTPServer(ctx, server, logger)
}
