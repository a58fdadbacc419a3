package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	appcli "tally/internal/cli"
	apphttp "tally/internal/http"
	applog "tally/internal/log"
)

type serveCmd struct {
	Port string `help:"Listen port, overrides PORT from the environment."`
}

func (c *serveCmd) Run(_ *globals) error {
	appcli.LoadEnvFile()
	logger := appcli.SetupLogger()
	cfg := appcli.LoadAndValidateConfig(logger)
	if c.Port != "" {
		cfg.Port = c.Port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, cleanup := appcli.OpenStore(ctx, logger, cfg)
	defer cleanup()

	srv := apphttp.NewServer(":"+cfg.Port, st, apphttp.Options{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
		Logger:    logger,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting tally server",
			"port", cfg.Port, "backend", cfg.Backend, applog.FieldOperation, applog.OpStartup)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down", applog.FieldOperation, applog.OpShutdown)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("Server stopped gracefully")
	return nil
}
