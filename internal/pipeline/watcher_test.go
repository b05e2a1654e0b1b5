// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/nutrilens/nutrilens/internal/dataset"
)

func TestWatcherImplementsService(t *testing.T) {
	var _ suture.Service = (*Watcher)(nil)
}

func TestWatcherString(t *testing.T) {
	w := NewWatcher("data.csv", time.Second, nil, nil)
	if w.String() != "dataset-watcher" {
		t.Errorf("unexpected service name %q", w.String())
	}
}

func TestWatcherDefaultDebounce(t *testing.T) {
	w := NewWatcher("data.csv", 0, nil, nil)
	if w.debounce != 2*time.Second {
		t.Errorf("expected default debounce 2s, got %v", w.debounce)
	}
}

func TestWatcherRunAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diets.csv")
	if err := os.WriteFile(path, []byte(rawCSV), 0o600); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	writer := &memWriter{}
	holder := dataset.NewHolder(dataset.New(nil))
	w := NewWatcher(path, time.Second, NewRunner(writer, nil), holder)

	w.runAndReload(context.Background())

	if holder.Get().Len() != 3 {
		t.Errorf("expected reloaded dataset with 3 records, got %d", holder.Get().Len())
	}
	if writer.summary == nil {
		t.Error("pipeline run should have persisted a summary artifact")
	}
}

func TestWatcherRunAndReloadFailureKeepsDataset(t *testing.T) {
	// Missing dataset file: the run fails and the holder is untouched.
	writer := &memWriter{}
	initial := dataset.New(nil)
	holder := dataset.NewHolder(initial)
	w := NewWatcher(filepath.Join(t.TempDir(), "missing.csv"), time.Second, NewRunner(writer, nil), holder)

	w.runAndReload(context.Background())

	if holder.Get() != initial {
		t.Error("failed run must not swap the dataset")
	}
}

func TestWatcherReactsToFileChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diets.csv")
	if err := os.WriteFile(path, []byte(rawCSV), 0o600); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	writer := &memWriter{}
	holder := dataset.NewHolder(dataset.New(nil))
	w := NewWatcher(path, 50*time.Millisecond, NewRunner(writer, nil), holder)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Serve(ctx)
	}()

	// Give the watch a moment to establish, then touch the file.
	time.Sleep(100 * time.Millisecond)
	updated := rawCSV + "paleo,Burger,american,28,5,20\n"
	if err := os.WriteFile(path, []byte(updated), 0o600); err != nil {
		t.Fatalf("failed to update dataset: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for holder.Get().Len() != 4 {
		select {
		case <-deadline:
			t.Fatalf("watcher did not reload dataset, have %d records", holder.Get().Len())
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	<-done
}
