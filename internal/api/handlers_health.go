// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package api

import (
	"net/http"
	"time"

	"github.com/nutrilens/nutrilens/internal/models"
)

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ds := h.holder.Get()

	respondSuccess(w, models.HealthStatus{
		Status:        "healthy",
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
		RecordCount:   ds.Len(),
		DietTypes:     len(ds.DietOptions()),
		StartedAt:     h.startTime,
	}, start)
}
