// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package pipeline implements the precompute pipeline: normalize the raw
// dataset, accumulate per-diet sums in a single pass, and persist the
// cleaned dataset and summary artifact to durable storage with a
// best-effort local mirror.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/nutrilens/nutrilens/internal/dataset"
	"github.com/nutrilens/nutrilens/internal/logging"
	"github.com/nutrilens/nutrilens/internal/metrics"
	"github.com/nutrilens/nutrilens/internal/models"
	"github.com/nutrilens/nutrilens/internal/store"
)

// Runner executes pipeline runs. It is invoked by an external trigger (the
// dataset watcher or the HTTP trigger endpoint), never by polling.
type Runner struct {
	writer store.ArtifactWriter
	mirror *store.LocalMirror // nil disables the local mirror
}

// NewRunner creates a pipeline runner. mirror may be nil to disable the
// local mirror.
func NewRunner(writer store.ArtifactWriter, mirror *store.LocalMirror) *Runner {
	return &Runner{writer: writer, mirror: mirror}
}

// Result summarizes one successful pipeline run.
type Result struct {
	Records  int
	Artifact *models.SummaryArtifact
	Duration time.Duration
}

// Run executes one pipeline run over the raw dataset read from input.
//
// Durable-store write failures fail the run; the external trigger retries.
// A local-mirror write failure is logged and swallowed. Zero input rows
// still succeed, producing header-only artifacts. Output is deterministic:
// identical input yields byte-identical artifacts.
func (r *Runner) Run(ctx context.Context, input io.Reader) (*Result, error) {
	start := time.Now()

	result, err := r.run(ctx, input)
	metrics.RecordPipelineRun(time.Since(start), recordCount(result), err)
	if err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	logging.Info().
		Int("records", result.Records).
		Int("diet_types", len(result.Artifact.RecipeCountsByDiet)).
		Dur("duration", result.Duration).
		Msg("Pipeline run complete")
	return result, nil
}

// RunFile executes a pipeline run over the dataset file at path.
func (r *Runner) RunFile(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw dataset %s: %w", path, err)
	}
	defer f.Close()
	return r.Run(ctx, f)
}

// RunAndReload executes a pipeline run over the dataset file at path, then
// reloads the file into holder so the live analytics surface and the
// persisted artifacts describe the same input. Both external triggers (the
// watcher and the HTTP trigger endpoint) go through here.
func (r *Runner) RunAndReload(ctx context.Context, path string, holder *dataset.Holder) (*Result, error) {
	result, err := r.RunFile(ctx, path)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reload dataset %s: %w", path, err)
	}
	holder.Swap(ds)
	metrics.DatasetRecords.Set(float64(ds.Len()))
	return result, nil
}

func (r *Runner) run(ctx context.Context, input io.Reader) (*Result, error) {
	records, extraCols, err := dataset.ParseCSV(input)
	if err != nil {
		return nil, fmt.Errorf("normalize raw dataset: %w", err)
	}

	artifact := Summarize(records)

	var cleaned bytes.Buffer
	if err := dataset.WriteCleaned(&cleaned, records, extraCols); err != nil {
		return nil, fmt.Errorf("build cleaned dataset: %w", err)
	}

	// Two independent durable writes, each atomic at the storage layer.
	// Failure here fails the run so the trigger can retry.
	if err := r.writer.PutCleaned(ctx, cleaned.Bytes()); err != nil {
		return nil, fmt.Errorf("persist cleaned dataset: %w", err)
	}
	if err := r.writer.PutSummary(ctx, artifact); err != nil {
		return nil, fmt.Errorf("persist summary artifact: %w", err)
	}

	// Local mirror is best-effort only.
	if r.mirror != nil {
		if err := r.mirror.Write(artifact); err != nil {
			metrics.RecordMirrorWriteFailure()
			logging.Warn().
				Err(err).
				Str("path", r.mirror.Path()).
				Msg("Local mirror write failed; continuing")
		}
	}

	return &Result{Records: len(records), Artifact: artifact}, nil
}

// Summarize builds the summary artifact from normalized records in a single
// pass: per-diet sums and counts, then averages. Memory is proportional to
// the number of distinct diet types, not the record count. Diet types group
// case-insensitively; map keys use the first-seen display form.
func Summarize(records []models.Recipe) *models.SummaryArtifact {
	type accumulator struct {
		display string
		sums    models.Macros
		count   int
	}

	groups := make(map[string]*accumulator)
	for _, rec := range records {
		key := dataset.CanonicalDiet(rec.DietType)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{display: rec.DietType}
			groups[key] = acc
		}
		acc.sums.Protein += rec.ProteinG
		acc.sums.Carbs += rec.CarbsG
		acc.sums.Fat += rec.FatG
		acc.count++
	}

	artifact := models.NewSummaryArtifact()
	for _, acc := range groups {
		// count >= 1 for any diet type that appears
		n := float64(acc.count)
		artifact.AvgMacrosByDiet[acc.display] = models.Macros{
			Protein: acc.sums.Protein / n,
			Carbs:   acc.sums.Carbs / n,
			Fat:     acc.sums.Fat / n,
		}
		artifact.RecipeCountsByDiet[acc.display] = acc.count
	}
	return artifact
}

func recordCount(res *Result) int {
	if res == nil {
		return 0
	}
	return res.Records
}
