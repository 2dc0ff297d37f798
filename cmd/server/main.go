// Package main is the entry point for the listing search service. It loads
// the profile's configuration, wires the OData listing client, search service
// and HTTP adapter with samber/do v2, and serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/listing-search-service/internal/adapters/http"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/config"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/logging"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/telemetry"
)

// shutdownTimeout bounds draining in-flight searches and flushing telemetry.
const shutdownTimeout = 20 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "listing-search-service: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a config profile (local, dev, qa or prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log, os.Stderr)
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.String("profile", profile),
		slog.String("upstream", cfg.Upstream.BaseURL),
		slog.Int("default_top", cfg.Search.DefaultTop),
		slog.Int("max_top", cfg.Search.MaxTop),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, tel)
	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		shutdown(injector, logger)
		return fmt.Errorf("wiring: %w", err)
	}

	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	select {
	case err = <-served:
		err = fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdown(injector, logger)
	if err == nil {
		err = <-served
	}
	return err
}

// shutdown stops every built service, dependents first: the server drains
// in-flight searches before the telemetry providers flush.
func shutdown(injector *do.RootScope, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if report := injector.ShutdownWithContext(ctx); !report.Succeed {
		logger.Error("shutdown incomplete", slog.String("errors", report.Error()))
		return
	}
	logger.Info("shutdown complete")
}
