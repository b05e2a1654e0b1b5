// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nutrilens/nutrilens/internal/models"
)

// PageSize is the fixed number of recipes per search result page.
const PageSize = 10

// NoResultsMessage is the single display line returned when no records
// survive the keyword filter.
const NoResultsMessage = "No recipes found for your search."

// SearchRecipes filters records by keyword, sorts them by recipe name, and
// returns the requested page as formatted display lines.
//
// A non-empty keyword retains records where it is a case-insensitive
// substring of the recipe name OR the cuisine type. The page number is
// 1-based and silently clamped into [1, total_pages]; out-of-range input is
// never an error. Zero matches yield a single "no results" line with
// page=1 and total_pages=1.
func SearchRecipes(records []models.Recipe, keyword string, page int) models.RecipePage {
	matched := records
	if keyword != "" {
		needle := strings.ToLower(keyword)
		matched = make([]models.Recipe, 0)
		for _, rec := range records {
			if strings.Contains(strings.ToLower(rec.RecipeName), needle) ||
				strings.Contains(strings.ToLower(rec.CuisineType), needle) {
				matched = append(matched, rec)
			}
		}
	}

	total := len(matched)
	if total == 0 {
		return models.RecipePage{
			Lines:         []string{NoResultsMessage},
			Page:          1,
			TotalPages:    1,
			TotalMatching: 0,
		}
	}

	// Stable sort on the name as provided; no locale normalization.
	sorted := make([]models.Recipe, len(matched))
	copy(sorted, matched)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecipeName < sorted[j].RecipeName
	})

	totalPages := (total + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}

	lines := make([]string, 0, end-start)
	for _, rec := range sorted[start:end] {
		lines = append(lines, fmt.Sprintf("%s (%s, %s)", rec.RecipeName, rec.DietType, rec.CuisineType))
	}

	return models.RecipePage{
		Lines:         lines,
		Page:          page,
		TotalPages:    totalPages,
		TotalMatching: total,
	}
}
