// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/nutrilens/nutrilens/internal/models"
)

// Key prefixes for BadgerDB storage.
const (
	summaryKey = "artifact:summary"
	cleanedKey = "artifact:cleaned"
)

// BadgerStore is the durable artifact store backed by BadgerDB. Writes go
// through transactions, so a new artifact becomes visible atomically and a
// failed write leaves the previous one untouched.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) the durable store at path.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStoreFromDB wraps an already-open BadgerDB. Useful for tests.
func NewBadgerStoreFromDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// PutSummary stores the summary artifact, replacing any previous one.
func (s *BadgerStore) PutSummary(ctx context.Context, artifact *models.SummaryArtifact) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return fmt.Errorf("marshal summary artifact: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(summaryKey), data)
	})
	if err != nil {
		return fmt.Errorf("put summary artifact: %w", err)
	}
	return nil
}

// GetSummary retrieves the summary artifact.
// Returns ErrArtifactNotFound when none has been written.
func (s *BadgerStore) GetSummary(ctx context.Context) (*models.SummaryArtifact, error) {
	var artifact models.SummaryArtifact

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(summaryKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrArtifactNotFound
		}
		if err != nil {
			return fmt.Errorf("get summary artifact: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &artifact)
		})
	})
	if err != nil {
		return nil, err
	}
	return &artifact, nil
}

// Source returns the provenance tag for the durable store.
func (s *BadgerStore) Source() string {
	return SourceDurable
}

// PutCleaned stores the cleaned dataset CSV, replacing any previous one.
func (s *BadgerStore) PutCleaned(ctx context.Context, cleanedCSV []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(cleanedKey), cleanedCSV)
	})
	if err != nil {
		return fmt.Errorf("put cleaned dataset: %w", err)
	}
	return nil
}

// GetCleaned retrieves the cleaned dataset CSV.
// Returns ErrCleanedNotFound when none has been written.
func (s *BadgerStore) GetCleaned(ctx context.Context) ([]byte, error) {
	var data []byte

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(cleanedKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrCleanedNotFound
		}
		if err != nil {
			return fmt.Errorf("get cleaned dataset: %w", err)
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Close closes the underlying BadgerDB.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
