// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package analytics implements the per-request analytics operations over an
// immutable recipe dataset: diet filtering, per-diet macro means, macro
// correlation, distribution counts, keyword search with pagination, and the
// macro-dominance classifier.
//
// Every operation is a pure function over a read-only record slice. The
// dataset is shared across concurrent requests without locking; nothing here
// holds state between calls.
package analytics

import (
	"errors"
	"math"
	"sort"

	"github.com/nutrilens/nutrilens/internal/dataset"
	"github.com/nutrilens/nutrilens/internal/models"
)

// ErrInsufficientData is returned by Correlation when the record subset has
// fewer than two entries. Callers suppress the correlation output rather
// than treating this as a failure.
var ErrInsufficientData = errors.New("insufficient data for correlation (need at least 2 records)")

// FilterByDiet returns the records whose diet type matches dietName
// case-insensitively. An empty dietName returns the input slice unchanged.
// Callers must not mutate the result.
func FilterByDiet(records []models.Recipe, dietName string) []models.Recipe {
	if dietName == "" {
		return records
	}
	want := dataset.CanonicalDiet(dietName)

	filtered := make([]models.Recipe, 0)
	for _, rec := range records {
		if dataset.CanonicalDiet(rec.DietType) == want {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// GroupMeans computes the arithmetic mean of each macro per diet group,
// sorted by descending mean protein. Ties preserve first-seen diet order.
// Empty groups cannot appear: a diet type is only present when at least one
// record carries it, so no division by zero is possible.
func GroupMeans(records []models.Recipe) []models.DietGroupMean {
	type accumulator struct {
		display string
		sums    models.Macros
		count   int
		order   int
	}

	groups := make(map[string]*accumulator)
	var keys []string

	for _, rec := range records {
		key := dataset.CanonicalDiet(rec.DietType)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{display: rec.DietType, order: len(keys)}
			groups[key] = acc
			keys = append(keys, key)
		}
		acc.sums.Protein += rec.ProteinG
		acc.sums.Carbs += rec.CarbsG
		acc.sums.Fat += rec.FatG
		acc.count++
	}

	means := make([]models.DietGroupMean, 0, len(keys))
	for _, key := range keys {
		acc := groups[key]
		n := float64(acc.count)
		means = append(means, models.DietGroupMean{
			DietType:    acc.display,
			MeanProtein: acc.sums.Protein / n,
			MeanCarbs:   acc.sums.Carbs / n,
			MeanFat:     acc.sums.Fat / n,
			RecordCount: acc.count,
		})
	}

	// Descending mean protein; SliceStable keeps first-seen order among ties.
	sort.SliceStable(means, func(i, j int) bool {
		return means[i].MeanProtein > means[j].MeanProtein
	})
	return means
}

// Distribution counts records per diet type, in descending count order with
// first-seen order among ties.
func Distribution(records []models.Recipe) []models.DietCount {
	counts := make(map[string]int)
	display := make(map[string]string)
	var keys []string

	for _, rec := range records {
		key := dataset.CanonicalDiet(rec.DietType)
		if _, ok := counts[key]; !ok {
			keys = append(keys, key)
			display[key] = rec.DietType
		}
		counts[key]++
	}

	dist := make([]models.DietCount, 0, len(keys))
	for _, key := range keys {
		dist = append(dist, models.DietCount{DietType: display[key], Count: counts[key]})
	}

	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Count > dist[j].Count
	})
	return dist
}

// correlationLabels is the fixed axis order of the correlation matrix.
var correlationLabels = [3]string{"protein", "carbs", "fat"}

// Correlation computes the 3x3 Pearson correlation matrix over
// (protein, carbs, fat) for the given subset. It returns
// ErrInsufficientData when the subset has fewer than 2 records; computing a
// correlation over fewer is undefined, not an error to recover from.
//
// A macro with zero variance correlates as 0 against the other macros and 1
// against itself.
func Correlation(records []models.Recipe) (*models.CorrelationMatrix, error) {
	if len(records) < 2 {
		return nil, ErrInsufficientData
	}

	n := float64(len(records))
	series := [3][]float64{
		make([]float64, len(records)),
		make([]float64, len(records)),
		make([]float64, len(records)),
	}
	for i, rec := range records {
		series[0][i] = rec.ProteinG
		series[1][i] = rec.CarbsG
		series[2][i] = rec.FatG
	}

	var means [3]float64
	for m := 0; m < 3; m++ {
		var sum float64
		for _, v := range series[m] {
			sum += v
		}
		means[m] = sum / n
	}

	matrix := &models.CorrelationMatrix{Labels: correlationLabels}
	for a := 0; a < 3; a++ {
		for b := a; b < 3; b++ {
			r := pearson(series[a], series[b], means[a], means[b])
			matrix.Values[a][b] = r
			matrix.Values[b][a] = r
		}
	}
	return matrix, nil
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series with precomputed means. Zero variance in either series yields 1 on
// the diagonal case (identical series) and 0 otherwise.
func pearson(x, y []float64, meanX, meanY float64) float64 {
	var cov, varX, varY float64
	for i := range x {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		if sameSeries(x, y) {
			return 1
		}
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}

// sameSeries reports whether two series are element-wise identical.
func sameSeries(x, y []float64) bool {
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
