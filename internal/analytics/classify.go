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

// NoDataMessage is the single display line returned when the classifier is
// given an empty record subset.
const NoDataMessage = "No data for selected diet."

// dominanceOrder is the fixed evaluation order of the classifier. Ties
// resolve to the earlier macro: protein over carbs over fat.
var dominanceOrder = [3]string{"protein", "carbs", "fat"}

// ClassifyDominance labels every record with its dominant macro (the
// strictly largest of protein, carbs, fat under the fixed tie-break order)
// and tallies counts per class. Output lines are sorted by descending count,
// then by evaluation order. This is a deterministic per-row heuristic, not
// a learned clustering.
func ClassifyDominance(records []models.Recipe) models.DominanceTally {
	if len(records) == 0 {
		return models.DominanceTally{
			Lines:  []string{NoDataMessage},
			Counts: map[string]int{},
		}
	}

	counts := make(map[string]int)
	for _, rec := range records {
		counts[dominantMacro(rec)]++
	}

	classes := make([]string, 0, len(counts))
	for _, class := range dominanceOrder {
		if counts[class] > 0 {
			classes = append(classes, class)
		}
	}
	sort.SliceStable(classes, func(i, j int) bool {
		return counts[classes[i]] > counts[classes[j]]
	})

	lines := make([]string, 0, len(classes))
	for _, class := range classes {
		lines = append(lines, fmt.Sprintf("%s dominant: %d recipes", titleCase(class), counts[class]))
	}

	return models.DominanceTally{Lines: lines, Counts: counts}
}

// dominantMacro returns the macro with the strictly largest value; on ties
// the earlier entry of dominanceOrder wins.
func dominantMacro(rec models.Recipe) string {
	values := [3]float64{rec.ProteinG, rec.CarbsG, rec.FatG}

	best := 0
	for i := 1; i < 3; i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return dominanceOrder[best]
}

// titleCase upper-cases the first letter of a class name for display.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
