package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ExchangeScout/pkg/config"
	xhttp "ExchangeScout/pkg/http"
	applogger "ExchangeScout/pkg/logger"
)

// App encapsulates the application lifecycle: one HTTP server, graceful
// shutdown on SIGINT/SIGTERM.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	httpServer *xhttp.Server
}

// New creates the application around the given route handler.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *App {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(cfg.Metrics.Path))
	}

	return &App{
		cfg:        cfg,
		logger:     logger,
		httpServer: xhttp.NewServer(handler, logger, opts...),
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		return err
	}
	a.logger.Info("started",
		applogger.String("env", a.cfg.Environment),
		applogger.String("default_provider", a.cfg.Providers.Default),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}

// Server exposes the HTTP server, mainly for tests.
func (a *App) Server() *xhttp.Server {
	return a.httpServer
}
