// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package api provides the HTTP surface of Nutrilens: live analytics over
// the in-memory dataset, the cached results service, and the pipeline
// trigger endpoint.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared response helpers
//   - handlers_analytics.go: analytics and diet-options endpoints
//   - handlers_results.go: cached results and pipeline trigger endpoints
//   - handlers_health.go: health endpoint
package api

import (
	"context"
	"time"

	"github.com/nutrilens/nutrilens/internal/dataset"
	"github.com/nutrilens/nutrilens/internal/pipeline"
	"github.com/nutrilens/nutrilens/internal/store"
)

// CleanedReader reads the cleaned dataset from durable storage.
// Satisfied by *store.BadgerStore.
type CleanedReader interface {
	GetCleaned(ctx context.Context) ([]byte, error)
}

// Handler contains dependencies for all API handlers.
type Handler struct {
	holder      *dataset.Holder
	results     *store.FallbackReader
	cleaned     CleanedReader
	runner      *pipeline.Runner
	datasetPath string
	startTime   time.Time
}

// NewHandler creates the API handler.
//
// Dependencies:
//   - holder: the shared in-memory dataset (swapped by the watcher)
//   - results: fallback reader for the cached results service
//   - cleaned: durable-store reader for the cleaned dataset
//   - runner: pipeline runner for the manual trigger endpoint
//   - datasetPath: raw dataset path used by triggered runs
func NewHandler(holder *dataset.Holder, results *store.FallbackReader, cleaned CleanedReader, runner *pipeline.Runner, datasetPath string) *Handler {
	return &Handler{
		holder:      holder,
		results:     results,
		cleaned:     cleaned,
		runner:      runner,
		datasetPath: datasetPath,
		startTime:   time.Now(),
	}
}
