// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nutrilens/nutrilens/internal/dataset"
	"github.com/nutrilens/nutrilens/internal/logging"
)

// Watcher triggers a pipeline run whenever the raw dataset file changes,
// then reloads the in-memory dataset so live analytics and the precomputed
// artifact stay consistent. It implements suture.Service and is supervised
// from the data layer of the tree.
//
// Events are debounced: editors and upload tools commonly emit several
// write events for one logical change.
type Watcher struct {
	path     string
	debounce time.Duration
	runner   *Runner
	holder   *dataset.Holder
}

// NewWatcher creates a dataset watcher for the file at path.
func NewWatcher(path string, debounce time.Duration, runner *Runner, holder *dataset.Holder) *Watcher {
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		runner:   runner,
		holder:   holder,
	}
}

// Serve implements suture.Service. It watches the dataset file's directory
// (watching the file itself breaks on atomic replace) until the context is
// canceled. A failed pipeline run is logged and waits for the next change
// event; the watcher itself only fails when the filesystem watch does.
func (w *Watcher) Serve(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create dataset watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch dataset directory %s: %w", dir, err)
	}

	logging.Info().
		Str("path", w.path).
		Dur("debounce", w.debounce).
		Msg("Dataset watcher started")

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return fmt.Errorf("dataset watcher event channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return fmt.Errorf("dataset watcher error channel closed")
			}
			logging.Warn().Err(err).Msg("Dataset watcher error")

		case <-timerC:
			timer = nil
			timerC = nil
			w.runAndReload(ctx)
		}
	}
}

// runAndReload executes the pipeline and swaps in the reloaded dataset.
func (w *Watcher) runAndReload(ctx context.Context) {
	result, err := w.runner.RunAndReload(ctx, w.path, w.holder)
	if err != nil {
		logging.Error().Err(err).Str("path", w.path).Msg("Triggered pipeline run failed")
		return
	}

	logging.Info().
		Int("records", result.Records).
		Msg("Dataset changed; pipeline run and reload complete")
}

// String implements fmt.Stringer for supervisor logging.
func (w *Watcher) String() string {
	return "dataset-watcher"
}
