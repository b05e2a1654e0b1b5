// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/nutrilens/nutrilens/internal/analytics"
	"github.com/nutrilens/nutrilens/internal/logging"
	"github.com/nutrilens/nutrilens/internal/models"
	"github.com/nutrilens/nutrilens/internal/validation"
)

// Analytics handles POST /api/v1/analytics. The request's action field
// selects the computation: aggregate, search, or classify.
func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req, err := decodeAnalyticsRequest(r)
	if err != nil {
		var ve *validation.RequestValidationError
		if errors.As(err, &ve) {
			apiErr := ve.ToAPIError()
			respondJSON(w, http.StatusBadRequest, &models.APIResponse{
				Status:   "error",
				Metadata: models.Metadata{Timestamp: time.Now()},
				Error: &models.APIError{
					Code:    apiErr.Code,
					Message: apiErr.Message,
					Details: apiErr.Details,
				},
			})
			return
		}
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return
	}

	records := analytics.FilterByDiet(h.holder.Get().Records(), req.DietType)

	logging.Debug().
		Str("action", sanitizeLogValue(req.Action)).
		Str("diet_type", sanitizeLogValue(req.DietType)).
		Int("records", len(records)).
		Msg("Running analytics request")

	switch req.Action {
	case "aggregate":
		h.aggregate(w, records, start)
	case "search":
		respondSuccess(w, analytics.SearchRecipes(records, req.Keyword, req.Page), start)
	case "classify":
		respondSuccess(w, analytics.ClassifyDominance(records), start)
	}
}

// aggregate computes group means, distribution, and the macro correlation
// matrix in one pass. Correlation is omitted when the filtered set is too
// small to correlate.
func (h *Handler) aggregate(w http.ResponseWriter, records []models.Recipe, start time.Time) {
	result := models.AggregateResult{
		GroupMeans:   analytics.GroupMeans(records),
		Distribution: analytics.Distribution(records),
	}

	corr, err := analytics.Correlation(records)
	if err != nil {
		if !errors.Is(err, analytics.ErrInsufficientData) {
			respondError(w, http.StatusInternalServerError, "ANALYTICS_FAILED", "Failed to compute correlation", err)
			return
		}
	} else {
		result.Correlation = corr
	}

	respondSuccess(w, result, start)
}

// DietOptions handles GET /api/v1/diets, returning the distinct diet
// labels present in the loaded dataset.
func (h *Handler) DietOptions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, map[string]interface{}{
		"diets": h.holder.Get().DietOptions(),
	}, start)
}
