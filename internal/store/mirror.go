// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/nutrilens/nutrilens/internal/models"
)

// LocalMirror persists the summary artifact as a JSON file on local disk.
// It is the second fallback source for the cached results service and the
// pipeline's best-effort mirror target.
//
// Writes go to a temp file in the same directory followed by a rename, so a
// concurrent reader sees either the old or the new artifact, never a
// partial one.
type LocalMirror struct {
	path string
}

// NewLocalMirror creates a mirror writing to the given file path.
func NewLocalMirror(path string) *LocalMirror {
	return &LocalMirror{path: path}
}

// Path returns the mirror's file path.
func (m *LocalMirror) Path() string {
	return m.path
}

// Write persists the artifact with write-then-rename semantics, creating
// parent directories as needed.
func (m *LocalMirror) Write(artifact *models.SummaryArtifact) error {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal mirror artifact: %w", err)
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create mirror directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".summary-*.json")
	if err != nil {
		return fmt.Errorf("create mirror temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write mirror temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close mirror temp file: %w", err)
	}

	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace mirror file: %w", err)
	}
	return nil
}

// GetSummary reads the mirrored artifact.
// Returns ErrArtifactNotFound when the file does not exist.
func (m *LocalMirror) GetSummary(ctx context.Context) (*models.SummaryArtifact, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil, ErrArtifactNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read mirror file: %w", err)
	}

	var artifact models.SummaryArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode mirror file: %w", err)
	}
	return &artifact, nil
}

// Source returns the provenance tag for the local mirror.
func (m *LocalMirror) Source() string {
	return SourceLocal
}
