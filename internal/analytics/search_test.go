// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package analytics

import (
	"fmt"
	"testing"

	"github.com/nutrilens/nutrilens/internal/models"
)

func searchFixture(n int) []models.Recipe {
	records := make([]models.Recipe, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, models.Recipe{
			DietType:    "keto",
			RecipeName:  fmt.Sprintf("Recipe %03d", i),
			CuisineType: "american",
		})
	}
	return records
}

func TestSearchRecipesKeywordOR(t *testing.T) {
	records := []models.Recipe{
		{DietType: "keto", RecipeName: "Thai Curry", CuisineType: "thai"},
		{DietType: "vegan", RecipeName: "Green Salad", CuisineType: "thai fusion"},
		{DietType: "paleo", RecipeName: "Burger", CuisineType: "american"},
	}

	// "thai" matches the first by name and the second by cuisine.
	page := SearchRecipes(records, "THAI", 1)
	if page.TotalMatching != 2 {
		t.Fatalf("expected 2 matches, got %d", page.TotalMatching)
	}
	if page.Lines[0] != "Green Salad (vegan, thai fusion)" {
		t.Errorf("unexpected first line: %q", page.Lines[0])
	}
	if page.Lines[1] != "Thai Curry (keto, thai)" {
		t.Errorf("unexpected second line: %q", page.Lines[1])
	}
}

func TestSearchRecipesPagination(t *testing.T) {
	records := searchFixture(23)

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantLines int
		wantPages int
	}{
		{"first page full", 1, 1, 10, 3},
		{"middle page full", 2, 2, 10, 3},
		{"last page partial", 3, 3, 3, 3},
		{"page zero clamps low", 0, 1, 10, 3},
		{"negative clamps low", -5, 1, 10, 3},
		{"past end clamps high", 99, 3, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := SearchRecipes(records, "", tt.page)
			if page.Page != tt.wantPage {
				t.Errorf("page = %d, want %d", page.Page, tt.wantPage)
			}
			if page.TotalPages != tt.wantPages {
				t.Errorf("total pages = %d, want %d", page.TotalPages, tt.wantPages)
			}
			if len(page.Lines) != tt.wantLines {
				t.Errorf("lines = %d, want %d", len(page.Lines), tt.wantLines)
			}
			if page.TotalMatching != 23 {
				t.Errorf("total matching = %d, want 23", page.TotalMatching)
			}
		})
	}
}

func TestSearchRecipesSortedByName(t *testing.T) {
	records := []models.Recipe{
		{DietType: "keto", RecipeName: "Zucchini Boats", CuisineType: "italian"},
		{DietType: "keto", RecipeName: "Avocado Toast", CuisineType: "american"},
	}

	page := SearchRecipes(records, "", 1)
	if page.Lines[0] != "Avocado Toast (keto, american)" {
		t.Errorf("results must sort by name ascending, got %q first", page.Lines[0])
	}
}

func TestSearchRecipesNoResults(t *testing.T) {
	page := SearchRecipes(searchFixture(5), "nonexistent", 1)

	if page.TotalMatching != 0 {
		t.Errorf("total matching = %d, want 0", page.TotalMatching)
	}
	if page.Page != 1 || page.TotalPages != 1 {
		t.Errorf("empty result should report page 1 of 1, got %d of %d", page.Page, page.TotalPages)
	}
	if len(page.Lines) != 1 || page.Lines[0] != NoResultsMessage {
		t.Errorf("expected single no-results line, got %v", page.Lines)
	}
}

func TestSearchRecipesEmptyDataset(t *testing.T) {
	page := SearchRecipes(nil, "", 1)
	if len(page.Lines) != 1 || page.Lines[0] != NoResultsMessage {
		t.Errorf("expected no-results line for empty dataset, got %v", page.Lines)
	}
}
