// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package dataset

import (
	"sync/atomic"
)

// Holder shares the active dataset between the request path and the
// dataset watcher. Readers take a snapshot pointer; the watcher swaps in a
// freshly loaded dataset after a pipeline run. Individual datasets stay
// immutable, so a request keeps working on the snapshot it started with.
type Holder struct {
	current atomic.Pointer[Dataset]
}

// NewHolder creates a holder with the given initial dataset.
func NewHolder(d *Dataset) *Holder {
	h := &Holder{}
	h.current.Store(d)
	return h
}

// Get returns the current dataset snapshot.
func (h *Holder) Get() *Dataset {
	return h.current.Load()
}

// Swap atomically replaces the active dataset.
func (h *Holder) Swap(d *Dataset) {
	h.current.Store(d)
}
