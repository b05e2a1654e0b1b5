// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/nutrilens/nutrilens/internal/logging"
	"github.com/nutrilens/nutrilens/internal/store"
)

// Results handles GET /api/v1/results, serving the precomputed summary
// artifact with its provenance. Reads try durable storage first and fall
// back to the local mirror.
func (h *Handler) Results(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	cached, err := h.results.Get(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrArtifactNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND",
				"No precomputed results available. Run the pipeline first.", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to read precomputed results", err)
		return
	}

	respondSuccess(w, cached, start)
}

// CleanedDataset handles GET /api/v1/results/cleaned, serving the cleaned
// CSV written by the last pipeline run. Provenance is reported in the
// X-Artifact-Source header.
func (h *Handler) CleanedDataset(w http.ResponseWriter, r *http.Request) {
	data, err := h.cleaned.GetCleaned(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrCleanedNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND",
				"No cleaned dataset available. Run the pipeline first.", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to read cleaned dataset", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("X-Artifact-Source", store.SourceDurable)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write cleaned dataset response")
	}
}

// RunPipeline handles POST /api/v1/pipeline/run, re-running the precompute
// pipeline over the configured dataset file. The in-memory dataset is
// reloaded as part of the run, so live analytics reflect the new input.
func (h *Handler) RunPipeline(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	result, err := h.runner.RunAndReload(r.Context(), h.datasetPath, h.holder)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "PIPELINE_FAILED", "Pipeline run failed", err)
		return
	}

	respondSuccess(w, map[string]interface{}{
		"records_processed": result.Records,
		"duration_ms":       result.Duration.Milliseconds(),
	}, start)
}
