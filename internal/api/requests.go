// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/nutrilens/nutrilens/internal/validation"
)

// maxRequestBody caps analytics request bodies at 64 KiB.
const maxRequestBody = 64 << 10

// AnalyticsRequest is the body of POST /api/v1/analytics. Action selects
// the computation; the remaining fields scope it.
//
// Page carries no validation: out-of-range page numbers are clamped by the
// search operation, never rejected.
type AnalyticsRequest struct {
	Action   string `json:"action" validate:"required,oneof=aggregate search classify"`
	DietType string `json:"diet_type" validate:"omitempty,max=128"`
	Keyword  string `json:"keyword" validate:"omitempty,max=256"`
	Page     int    `json:"page"`
}

// decodeAnalyticsRequest parses and validates an analytics request body.
func decodeAnalyticsRequest(r *http.Request) (*AnalyticsRequest, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var req AnalyticsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := validation.ValidateStruct(&req); err != nil {
		return nil, err
	}

	return &req, nil
}
