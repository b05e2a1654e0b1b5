// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package models defines the data structures shared across Nutrilens
// components: recipe records, derived analytics results, the persisted
// summary artifact, and the standard API response envelope.
package models

// Recipe is one normalized row of the nutrition dataset. Records are
// immutable after normalization: the three macro fields are always numeric
// (never NaN), and DietType is never empty.
type Recipe struct {
	// DietType is the categorical label as it appeared in the raw input
	// ("keto", "Keto", ...). Grouping uses the canonical lowercase form;
	// display uses this value as-is.
	DietType string `json:"diet_type"`

	// RecipeName is the recipe's display name.
	RecipeName string `json:"recipe_name"`

	// CuisineType is the recipe's cuisine label.
	CuisineType string `json:"cuisine_type"`

	// ProteinG, CarbsG and FatG are macro quantities in grams.
	// Unparsable or missing raw values normalize to 0.
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`

	// Extra holds values of raw columns not recognized by normalization
	// (e.g. Extraction_day, Extraction_time), keyed by header name. They
	// pass through to the cleaned dataset untouched. Nil when the input
	// carried none.
	Extra map[string]string `json:"-"`
}

// Macros is a protein/carbs/fat triple, used for per-diet averages.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}
