// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nutrilens/nutrilens/internal/models"
)

// cleanedHeader is the canonical column set of the cleaned dataset.
var cleanedHeader = []string{
	"Diet_type", "Recipe_name", "Cuisine_type",
	"Protein(g)", "Carbs(g)", "Fat(g)",
}

// WriteCleaned writes the cleaned dataset CSV: canonical headers and
// guaranteed-numeric macro fields, followed by any extra input columns in
// extraCols order so the cleaned file keeps the full input schema. Zero
// records still produce a header-only file. Output is deterministic for a
// given record sequence.
func WriteCleaned(w io.Writer, records []models.Recipe, extraCols []string) error {
	cw := csv.NewWriter(w)

	header := cleanedHeader
	if len(extraCols) > 0 {
		header = append(append([]string{}, cleanedHeader...), extraCols...)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write cleaned header: %w", err)
	}

	for _, rec := range records {
		row := make([]string, 0, len(header))
		row = append(row,
			rec.DietType,
			rec.RecipeName,
			rec.CuisineType,
			formatMacro(rec.ProteinG),
			formatMacro(rec.CarbsG),
			formatMacro(rec.FatG),
		)
		for _, col := range extraCols {
			row = append(row, rec.Extra[col])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write cleaned row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush cleaned csv: %w", err)
	}
	return nil
}

// formatMacro renders a macro value with the shortest exact representation.
func formatMacro(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
