// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package main is the entry point for the Nutrilens server.
//
// Nutrilens is a self-hosted nutrition dataset analytics service. It loads
// a recipe macronutrient dataset, serves on-demand analytics (per-diet
// macro averages, macro correlation, diet distribution, recipe search,
// macro-dominance classification), and runs a precompute pipeline that
// persists a summary artifact to durable storage with a local JSON mirror
// for provenance-tagged fallback reads.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Dataset: CSV load and normalization into an atomically swappable
//     in-memory dataset
//  3. Storage: BadgerDB durable store plus local JSON mirror
//  4. Pipeline: precompute runner, and an optional fsnotify watcher that
//     re-runs it when the dataset file changes
//  5. HTTP Server: REST API under /api/v1 plus /metrics
//
// All long-running components run under a suture supervision tree.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (NUTRILENS_ prefix, e.g. NUTRILENS_SERVER_PORT)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections, waits for in-flight requests (10s timeout),
// and closes the durable store.
//
// # Example Usage
//
//	export NUTRILENS_DATASET_PATH=data/All_Diets.csv
//	export NUTRILENS_SERVER_PORT=8642
//	./nutrilens
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

	"github.com/nutrilens/nutrilens/internal/api"
	"github.com/nutrilens/nutrilens/internal/config"
	"github.com/nutrilens/nutrilens/internal/dataset"
	"github.com/nutrilens/nutrilens/internal/logging"
	"github.com/nutrilens/nutrilens/internal/metrics"
	"github.com/nutrilens/nutrilens/internal/pipeline"
	"github.com/nutrilens/nutrilens/internal/store"
	"github.com/nutrilens/nutrilens/internal/supervisor"
	"github.com/nutrilens/nutrilens/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("dataset_path", cfg.Dataset.Path).
		Str("badger_path", cfg.Storage.BadgerPath).
		Str("mirror_path", cfg.Storage.MirrorPath).
		Bool("watch", cfg.Dataset.Watch).
		Msg("Configuration loaded")

	// Load the dataset up front so a bad path fails fast.
	ds, err := dataset.LoadFile(cfg.Dataset.Path)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Dataset.Path).Msg("Failed to load dataset")
	}
	holder := dataset.NewHolder(ds)
	metrics.DatasetRecords.Set(float64(ds.Len()))

	logging.Info().
		Int("records", ds.Len()).
		Int("diet_types", len(ds.DietOptions())).
		Msg("Dataset loaded")

	// Durable store plus local mirror for provenance-tagged fallback reads.
	badgerStore, err := store.OpenBadger(cfg.Storage.BadgerPath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Storage.BadgerPath).Msg("Failed to open durable store")
	}
	defer func() {
		if err := badgerStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close durable store")
		}
	}()

	mirror := store.NewLocalMirror(cfg.Storage.MirrorPath)
	results := store.NewFallbackReader(badgerStore, mirror)
	runner := pipeline.NewRunner(badgerStore, mirror)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial pipeline run so results are available immediately. A failure
	// here is fatal: serving without a durable artifact defeats the point.
	if result, err := runner.RunFile(ctx, cfg.Dataset.Path); err != nil {
		logging.Fatal().Err(err).Msg("Initial pipeline run failed")
	} else {
		logging.Info().
			Int("records", result.Records).
			Dur("duration", result.Duration).
			Msg("Initial pipeline run complete")
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())

	if cfg.Dataset.Watch {
		watcher := pipeline.NewWatcher(cfg.Dataset.Path, cfg.Dataset.WatchDebounce, runner, holder)
		tree.AddDataService(watcher)
		logging.Info().Msg("Dataset watcher added to supervisor tree")
	}

	handler := api.NewHandler(holder, results, badgerStore, runner, cfg.Dataset.Path)
	router := api.NewRouter(handler, cfg.Security)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor finishes.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
