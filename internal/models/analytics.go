// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package models

// DietGroupMean holds per-diet macro averages for one diet group.
// Groups with zero qualifying records never appear in results.
type DietGroupMean struct {
	DietType    string  `json:"diet_type"`
	MeanProtein float64 `json:"mean_protein"`
	MeanCarbs   float64 `json:"mean_carbs"`
	MeanFat     float64 `json:"mean_fat"`
	RecordCount int     `json:"record_count"`
}

// CorrelationMatrix is the 3x3 Pearson correlation matrix over
// (protein, carbs, fat), in that axis order. Symmetric, diagonal 1.
type CorrelationMatrix struct {
	Labels [3]string     `json:"labels"`
	Values [3][3]float64 `json:"values"`
}

// DietCount is one entry of the recipe distribution by diet type.
type DietCount struct {
	DietType string `json:"diet_type"`
	Count    int    `json:"count"`
}

// AggregateResult is the combined output of the aggregate action:
// group means, distribution counts, and the correlation matrix when the
// filtered subset is large enough to compute one.
type AggregateResult struct {
	GroupMeans   []DietGroupMean    `json:"group_means"`
	Distribution []DietCount        `json:"distribution"`
	Correlation  *CorrelationMatrix `json:"correlation,omitempty"`
}

// RecipePage is one page of formatted recipe search results.
type RecipePage struct {
	// Lines are display lines "{recipe_name} ({diet_type}, {cuisine_type})",
	// or a single "no results" message when nothing matched.
	Lines []string `json:"lines"`

	// Page is the served page after clamping into [1, TotalPages].
	Page int `json:"page"`

	// TotalPages is max(1, ceil(total_matching / page_size)).
	TotalPages int `json:"total_pages"`

	// TotalMatching is the number of records surviving the keyword filter.
	TotalMatching int `json:"total_matching"`
}

// DominanceTally holds macro-dominance classification output.
type DominanceTally struct {
	// Lines are "{Class} dominant: {count} recipes" entries in descending
	// count order, or a single "no data" message for an empty subset.
	Lines []string `json:"lines"`

	// Counts maps dominant macro ("protein", "carbs", "fat") to its tally.
	Counts map[string]int `json:"counts"`
}
