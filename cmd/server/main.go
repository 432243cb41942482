// Planetary - Star Wars planet catalog service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/planetary

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/planetary/internal/api"
	"github.com/tomtom215/planetary/internal/config"
	"github.com/tomtom215/planetary/internal/logging"
	"github.com/tomtom215/planetary/internal/lookup"
	"github.com/tomtom215/planetary/internal/planets"
	"github.com/tomtom215/planetary/internal/store"
	"github.com/tomtom215/planetary/internal/supervisor"
	"github.com/tomtom215/planetary/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// storeMonitorInterval is how often the data layer pings the store.
const storeMonitorInterval = 30 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server failed")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.Driver).
		Str("environment", cfg.Server.Environment).
		Msg("Starting planetary")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	planetStore, err := store.Open(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("open planet store: %w", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := planetStore.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing planet store")
		}
	}()

	lookupClient, err := lookup.NewClient(&cfg.Lookup)
	if err != nil {
		return fmt.Errorf("create lookup client: %w", err)
	}

	service := planets.NewService(planetStore, lookupClient)
	router := api.NewRouter(api.NewHandler(service, version), api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + cfg.Lookup.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.Timeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewStoreMonitorService(planetStore, storeMonitorInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	return nil
}
