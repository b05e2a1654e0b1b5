// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalMirrorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "results.json")
	m := NewLocalMirror(path)
	ctx := context.Background()

	if _, err := m.GetSummary(ctx); !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound before first write, got %v", err)
	}

	if err := m.Write(testArtifact()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	got, err := m.GetSummary(ctx)
	if err != nil {
		t.Fatalf("GetSummary returned error: %v", err)
	}
	if got.AvgMacrosByDiet["vegan"].Carbs != 26 {
		t.Errorf("unexpected vegan carbs: %v", got.AvgMacrosByDiet["vegan"].Carbs)
	}
}

func TestLocalMirrorLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	m := NewLocalMirror(filepath.Join(dir, "results.json"))

	if err := m.Write(testArtifact()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read mirror dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".summary-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("expected only the mirror file, got %d entries", len(entries))
	}
}

func TestLocalMirrorCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	m := NewLocalMirror(path)
	if _, err := m.GetSummary(context.Background()); err == nil {
		t.Error("expected decode error for corrupt mirror file")
	}
}

func TestLocalMirrorSource(t *testing.T) {
	m := NewLocalMirror("unused.json")
	if m.Source() != SourceLocal {
		t.Errorf("Source() = %q, want %q", m.Source(), SourceLocal)
	}
}
