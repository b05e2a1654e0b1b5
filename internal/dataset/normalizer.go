// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package dataset loads the raw nutrition dataset and normalizes it into
// recipe records. Normalization is deliberately forgiving: bad field values
// never surface as errors, only a structurally unreadable input does.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nutrilens/nutrilens/internal/models"
)

// DefaultDietType is substituted when a row carries no diet type.
const DefaultDietType = "Unknown"

// Accepted header spellings per column. The raw dataset has been observed
// with and without a space before the unit parenthesis.
var (
	dietHeaders    = []string{"Diet_type", "Diet Type"}
	recipeHeaders  = []string{"Recipe_name", "Recipe Name"}
	cuisineHeaders = []string{"Cuisine_type", "Cuisine Type"}
	proteinHeaders = []string{"Protein(g)", "Protein (g)"}
	carbsHeaders   = []string{"Carbs(g)", "Carbs (g)"}
	fatHeaders     = []string{"Fat(g)", "Fat (g)"}
)

// ParseCSV reads raw CSV rows and returns normalized recipe records plus
// the names of unrecognized columns in input order.
//
// The first row is the header. Rows may have ragged field counts; fields
// missing from a row normalize to their defaults (0 for macros, "Unknown"
// for diet type). Columns the normalizer does not recognize are preserved
// verbatim on each record so the cleaned dataset keeps the input schema.
// An error is returned only when the CSV container itself cannot be read.
func ParseCSV(r io.Reader) ([]models.Recipe, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []models.Recipe{}, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := indexColumns(header)

	var records []models.Recipe
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv row: %w", err)
		}
		records = append(records, normalizeRow(row, cols))
	}

	if records == nil {
		records = []models.Recipe{}
	}
	return records, cols.extraNames(), nil
}

// columnIndexes holds the resolved positions of the recognized columns.
// A value of -1 means the column is absent from the header. Columns that
// match no recognized spelling are kept as extras, in input order.
type columnIndexes struct {
	diet    int
	recipe  int
	cuisine int
	protein int
	carbs   int
	fat     int
	extra   []extraColumn
}

// extraColumn is an unrecognized header column carried through untouched.
type extraColumn struct {
	name string
	idx  int
}

// extraNames returns the unrecognized column names in input order.
func (c columnIndexes) extraNames() []string {
	if len(c.extra) == 0 {
		return nil
	}
	names := make([]string, len(c.extra))
	for i, e := range c.extra {
		names[i] = e.name
	}
	return names
}

// indexColumns resolves header names to column positions, accepting any of
// the known spellings for each column. Header columns matching none of the
// known spellings are recorded as extras.
func indexColumns(header []string) columnIndexes {
	find := func(names []string) int {
		for i, h := range header {
			h = strings.TrimSpace(h)
			for _, n := range names {
				if h == n {
					return i
				}
			}
		}
		return -1
	}

	cols := columnIndexes{
		diet:    find(dietHeaders),
		recipe:  find(recipeHeaders),
		cuisine: find(cuisineHeaders),
		protein: find(proteinHeaders),
		carbs:   find(carbsHeaders),
		fat:     find(fatHeaders),
	}

	known := map[int]bool{
		cols.diet: true, cols.recipe: true, cols.cuisine: true,
		cols.protein: true, cols.carbs: true, cols.fat: true,
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" || known[i] {
			continue
		}
		cols.extra = append(cols.extra, extraColumn{name: h, idx: i})
	}
	return cols
}

// normalizeRow builds a Recipe from one raw row. Pure transform; every
// defect in the row is recovered locally with a safe default.
func normalizeRow(row []string, cols columnIndexes) models.Recipe {
	diet := strings.TrimSpace(field(row, cols.diet))
	if diet == "" {
		diet = DefaultDietType
	}

	var extra map[string]string
	if len(cols.extra) > 0 {
		extra = make(map[string]string, len(cols.extra))
		for _, e := range cols.extra {
			extra[e.name] = field(row, e.idx)
		}
	}

	return models.Recipe{
		DietType:    diet,
		RecipeName:  strings.TrimSpace(field(row, cols.recipe)),
		CuisineType: strings.TrimSpace(field(row, cols.cuisine)),
		ProteinG:    parseMacro(field(row, cols.protein)),
		CarbsG:      parseMacro(field(row, cols.carbs)),
		FatG:        parseMacro(field(row, cols.fat)),
		Extra:       extra,
	}
}

// field returns row[idx], or "" when the column is absent or the row is
// too short.
func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseMacro attempts a numeric parse of a raw macro value. Any failure
// (empty, non-numeric, missing) yields 0; parse errors never reach callers.
func parseMacro(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// CanonicalDiet returns the canonical grouping form of a diet type.
// Display always uses the value as it appeared in the input.
func CanonicalDiet(dietType string) string {
	return strings.ToLower(strings.TrimSpace(dietType))
}
