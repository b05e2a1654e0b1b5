// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package store

import (
	"context"
	"errors"

	"github.com/nutrilens/nutrilens/internal/logging"
	"github.com/nutrilens/nutrilens/internal/metrics"
	"github.com/nutrilens/nutrilens/internal/models"
)

// FallbackReader is the cached results service's read path: an ordered list
// of summary sources tried in sequence. Any failure at one stage (not-found,
// connectivity, deserialization) falls through to the next; exhausting all
// stages yields ErrArtifactNotFound. There is no retry loop and no lazy
// recomputation — a missing artifact is a hard miss.
//
// The reader holds no mutable state, so it is safe for unlimited concurrent
// callers.
type FallbackReader struct {
	sources []SummaryReader
}

// NewFallbackReader creates a reader trying sources in the given order.
// The conventional order is durable store first, local mirror second.
func NewFallbackReader(sources ...SummaryReader) *FallbackReader {
	return &FallbackReader{sources: sources}
}

// Get returns the first source's artifact that can be read, tagged with that
// source's provenance. Returns ErrArtifactNotFound when every source fails.
func (f *FallbackReader) Get(ctx context.Context) (*models.CachedSummary, error) {
	for _, src := range f.sources {
		artifact, err := src.GetSummary(ctx)
		if err != nil {
			if !errors.Is(err, ErrArtifactNotFound) {
				logging.Warn().
					Err(err).
					Str("source", src.Source()).
					Msg("Summary source failed, falling back")
			}
			continue
		}

		metrics.RecordArtifactRead(src.Source())
		return &models.CachedSummary{
			Source: src.Source(),
			Data:   artifact,
		}, nil
	}

	metrics.RecordArtifactMiss()
	return nil, ErrArtifactNotFound
}
