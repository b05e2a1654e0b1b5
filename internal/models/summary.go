// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package models

// SummaryArtifact is the precompute pipeline's durable output: per-diet macro
// averages and recipe counts, keyed by the diet type as it appears in the
// cleaned dataset. It is written atomically by each pipeline run and read by
// the cached results service; consumers treat it as read-only.
//
// Serialization is deterministic: map keys marshal in sorted order, so two
// runs over identical input produce byte-identical artifacts.
type SummaryArtifact struct {
	AvgMacrosByDiet    map[string]Macros `json:"avg_macros_by_diet"`
	RecipeCountsByDiet map[string]int    `json:"recipe_counts_by_diet"`
}

// NewSummaryArtifact returns an artifact with initialized (empty) maps, the
// header-only structure produced by a pipeline run over zero rows.
func NewSummaryArtifact() *SummaryArtifact {
	return &SummaryArtifact{
		AvgMacrosByDiet:    make(map[string]Macros),
		RecipeCountsByDiet: make(map[string]int),
	}
}

// CachedSummary is the cached results service response: the artifact plus a
// provenance tag naming the fallback source that satisfied the read.
type CachedSummary struct {
	// Source is "durable" or "local".
	Source string `json:"source"`

	Data *SummaryArtifact `json:"data"`
}
