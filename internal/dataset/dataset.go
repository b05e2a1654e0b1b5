// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package dataset

import (
	"fmt"
	"os"
	"sort"

	"github.com/nutrilens/nutrilens/internal/models"
)

// Dataset is an ordered, read-only sequence of normalized recipe records.
// It is loaded once and shared across all concurrent requests; no method
// mutates it after construction, so no locking is required on the read path.
type Dataset struct {
	records []models.Recipe
}

// New wraps normalized records in a Dataset. The caller must not mutate
// the slice afterwards.
func New(records []models.Recipe) *Dataset {
	if records == nil {
		records = []models.Recipe{}
	}
	return &Dataset{records: records}
}

// LoadFile reads and normalizes the dataset at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	records, _, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return New(records), nil
}

// Records returns the underlying record slice. Callers must treat it as
// read-only.
func (d *Dataset) Records() []models.Recipe {
	return d.records
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// DietOptions returns the sorted set of distinct non-empty diet types
// present in the dataset, in display form.
func (d *Dataset) DietOptions() []string {
	seen := make(map[string]struct{})
	options := make([]string, 0)
	for _, rec := range d.records {
		if rec.DietType == "" {
			continue
		}
		if _, ok := seen[rec.DietType]; ok {
			continue
		}
		seen[rec.DietType] = struct{}{}
		options = append(options, rec.DietType)
	}
	sort.Strings(options)
	return options
}
