// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/nutrilens/nutrilens/internal/models"
)

// stubReader is a SummaryReader returning a fixed artifact or error.
type stubReader struct {
	source   string
	artifact *models.SummaryArtifact
	err      error
	calls    int
}

func (s *stubReader) GetSummary(ctx context.Context) (*models.SummaryArtifact, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.artifact, nil
}

func (s *stubReader) Source() string { return s.source }

func TestFallbackReaderPrimaryHit(t *testing.T) {
	primary := &stubReader{source: SourceDurable, artifact: testArtifact()}
	secondary := &stubReader{source: SourceLocal, artifact: testArtifact()}

	got, err := NewFallbackReader(primary, secondary).Get(context.Background())
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Source != SourceDurable {
		t.Errorf("expected provenance %q, got %q", SourceDurable, got.Source)
	}
	if secondary.calls != 0 {
		t.Error("secondary should not be consulted when primary succeeds")
	}
}

func TestFallbackReaderFallsBack(t *testing.T) {
	tests := []struct {
		name       string
		primaryErr error
	}{
		{"primary miss", ErrArtifactNotFound},
		{"primary failure", errors.New("connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &stubReader{source: SourceDurable, err: tt.primaryErr}
			secondary := &stubReader{source: SourceLocal, artifact: testArtifact()}

			got, err := NewFallbackReader(primary, secondary).Get(context.Background())
			if err != nil {
				t.Fatalf("Get returned error: %v", err)
			}
			if got.Source != SourceLocal {
				t.Errorf("expected provenance %q, got %q", SourceLocal, got.Source)
			}
			if got.Data == nil {
				t.Error("expected artifact data from fallback source")
			}
		})
	}
}

func TestFallbackReaderAllMiss(t *testing.T) {
	primary := &stubReader{source: SourceDurable, err: ErrArtifactNotFound}
	secondary := &stubReader{source: SourceLocal, err: ErrArtifactNotFound}

	_, err := NewFallbackReader(primary, secondary).Get(context.Background())
	if !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound, got %v", err)
	}
	if primary.calls != 1 || secondary.calls != 1 {
		t.Errorf("every source should be tried once, got %d and %d", primary.calls, secondary.calls)
	}
}

func TestFallbackReaderNoSources(t *testing.T) {
	_, err := NewFallbackReader().Get(context.Background())
	if !errors.Is(err, ErrArtifactNotFound) {
		t.Errorf("expected ErrArtifactNotFound with no sources, got %v", err)
	}
}
