// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package analytics

import (
	"errors"
	"math"
	"testing"

	"github.com/nutrilens/nutrilens/internal/models"
)

func sampleRecords() []models.Recipe {
	return []models.Recipe{
		{DietType: "Keto", RecipeName: "Omelette", CuisineType: "french", ProteinG: 20, CarbsG: 2, FatG: 22},
		{DietType: "keto", RecipeName: "Grilled Salmon", CuisineType: "american", ProteinG: 34, CarbsG: 1, FatG: 18},
		{DietType: "keto", RecipeName: "Steak", CuisineType: "american", ProteinG: 42, CarbsG: 0, FatG: 30},
		{DietType: "vegan", RecipeName: "Lentil Soup", CuisineType: "indian", ProteinG: 12, CarbsG: 30, FatG: 4},
		{DietType: "vegan", RecipeName: "Tofu Stir Fry", CuisineType: "chinese", ProteinG: 16, CarbsG: 22, FatG: 10},
	}
}

func TestFilterByDiet(t *testing.T) {
	records := sampleRecords()

	t.Run("empty diet returns all records", func(t *testing.T) {
		got := FilterByDiet(records, "")
		if len(got) != len(records) {
			t.Errorf("expected %d records, got %d", len(records), len(got))
		}
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		got := FilterByDiet(records, "KETO")
		if len(got) != 3 {
			t.Fatalf("expected 3 keto records, got %d", len(got))
		}
		for _, rec := range got {
			if rec.CarbsG > 2 {
				t.Errorf("non-keto record leaked through filter: %+v", rec)
			}
		}
	})

	t.Run("unknown diet yields empty slice", func(t *testing.T) {
		got := FilterByDiet(records, "mediterranean")
		if len(got) != 0 {
			t.Errorf("expected 0 records, got %d", len(got))
		}
	})
}

func TestGroupMeans(t *testing.T) {
	means := GroupMeans(sampleRecords())

	if len(means) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(means))
	}

	// Keto has the higher mean protein, so it sorts first.
	keto := means[0]
	if keto.DietType != "Keto" {
		t.Errorf("expected first-seen display form 'Keto', got %q", keto.DietType)
	}
	if keto.RecordCount != 3 {
		t.Errorf("expected 3 keto records, got %d", keto.RecordCount)
	}
	if got := keto.MeanProtein; got != 32 {
		t.Errorf("expected keto mean protein 32, got %v", got)
	}
	if got := keto.MeanCarbs; got != 1 {
		t.Errorf("expected keto mean carbs 1, got %v", got)
	}

	vegan := means[1]
	if vegan.DietType != "vegan" {
		t.Errorf("expected 'vegan' second, got %q", vegan.DietType)
	}
	if got := vegan.MeanProtein; got != 14 {
		t.Errorf("expected vegan mean protein 14, got %v", got)
	}
}

func TestGroupMeansEmpty(t *testing.T) {
	means := GroupMeans(nil)
	if len(means) != 0 {
		t.Errorf("expected empty result for empty input, got %v", means)
	}
}

func TestGroupMeansTieOrder(t *testing.T) {
	records := []models.Recipe{
		{DietType: "dash", ProteinG: 10},
		{DietType: "paleo", ProteinG: 10},
	}

	means := GroupMeans(records)
	if len(means) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(means))
	}
	if means[0].DietType != "dash" || means[1].DietType != "paleo" {
		t.Errorf("ties must preserve first-seen order, got %q then %q",
			means[0].DietType, means[1].DietType)
	}
}

func TestDistribution(t *testing.T) {
	dist := Distribution(sampleRecords())

	if len(dist) != 2 {
		t.Fatalf("expected 2 diets, got %d", len(dist))
	}
	if dist[0].DietType != "Keto" || dist[0].Count != 3 {
		t.Errorf("expected Keto:3 first, got %s:%d", dist[0].DietType, dist[0].Count)
	}
	if dist[1].DietType != "vegan" || dist[1].Count != 2 {
		t.Errorf("expected vegan:2 second, got %s:%d", dist[1].DietType, dist[1].Count)
	}
}

func TestCorrelationInsufficientData(t *testing.T) {
	for _, records := range [][]models.Recipe{nil, {sampleRecords()[0]}} {
		if _, err := Correlation(records); !errors.Is(err, ErrInsufficientData) {
			t.Errorf("expected ErrInsufficientData for %d records, got %v", len(records), err)
		}
	}
}

func TestCorrelation(t *testing.T) {
	// Carbs is an exact linear function of protein, so their correlation
	// is exactly +1; fat runs in the opposite direction.
	records := []models.Recipe{
		{ProteinG: 1, CarbsG: 2, FatG: 9},
		{ProteinG: 2, CarbsG: 4, FatG: 7},
		{ProteinG: 3, CarbsG: 6, FatG: 5},
		{ProteinG: 4, CarbsG: 8, FatG: 3},
	}

	matrix, err := Correlation(records)
	if err != nil {
		t.Fatalf("Correlation returned error: %v", err)
	}

	if matrix.Labels != [3]string{"protein", "carbs", "fat"} {
		t.Errorf("unexpected labels: %v", matrix.Labels)
	}

	for i := 0; i < 3; i++ {
		if matrix.Values[i][i] != 1 {
			t.Errorf("diagonal [%d][%d] = %v, want 1", i, i, matrix.Values[i][i])
		}
	}

	if got := matrix.Values[0][1]; math.Abs(got-1) > 1e-9 {
		t.Errorf("protein/carbs correlation = %v, want 1", got)
	}
	if got := matrix.Values[0][2]; math.Abs(got+1) > 1e-9 {
		t.Errorf("protein/fat correlation = %v, want -1", got)
	}
	if matrix.Values[1][2] != matrix.Values[2][1] {
		t.Error("matrix must be symmetric")
	}
}

func TestCorrelationZeroVariance(t *testing.T) {
	records := []models.Recipe{
		{ProteinG: 5, CarbsG: 1, FatG: 3},
		{ProteinG: 5, CarbsG: 2, FatG: 4},
	}

	matrix, err := Correlation(records)
	if err != nil {
		t.Fatalf("Correlation returned error: %v", err)
	}

	if matrix.Values[0][0] != 1 {
		t.Errorf("constant series against itself should be 1, got %v", matrix.Values[0][0])
	}
	if matrix.Values[0][1] != 0 {
		t.Errorf("constant series against varying series should be 0, got %v", matrix.Values[0][1])
	}
}
