// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

// Package store persists the precompute pipeline's artifacts and serves them
// back through an ordered fallback chain.
//
// The durable store is BadgerDB: a transactional put gives the atomic
// replace semantics the pipeline requires, so readers never observe a
// half-written artifact. The summary artifact is additionally mirrored to a
// local JSON file (write-then-rename). The cached results service reads
// through a FallbackReader that tries the durable store first, then the
// mirror, tagging each response with the source that satisfied it.
package store

import (
	"context"
	"errors"

	"github.com/nutrilens/nutrilens/internal/models"
)

// Sentinel errors for artifact reads.
var (
	// ErrArtifactNotFound indicates no source holds a summary artifact.
	ErrArtifactNotFound = errors.New("summary artifact not found")

	// ErrCleanedNotFound indicates the cleaned dataset has not been written.
	ErrCleanedNotFound = errors.New("cleaned dataset not found")
)

// Provenance tags identifying which fallback source satisfied a read.
const (
	SourceDurable = "durable"
	SourceLocal   = "local"
)

// ArtifactWriter is the pipeline-facing write surface. Both writes must be
// atomic: a failed write leaves the previously visible artifact intact.
type ArtifactWriter interface {
	PutSummary(ctx context.Context, artifact *models.SummaryArtifact) error
	PutCleaned(ctx context.Context, cleanedCSV []byte) error
}

// SummaryReader is one fallback source for the cached results service.
type SummaryReader interface {
	// GetSummary returns the stored artifact, or ErrArtifactNotFound when
	// none exists. Any other error (connectivity, deserialization) also
	// triggers fallback to the next source.
	GetSummary(ctx context.Context) (*models.SummaryArtifact, error)

	// Source returns the provenance tag for this reader.
	Source() string
}
