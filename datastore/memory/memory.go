/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides the map-backed DataStore implementation.
package memory

import (
	"iter"

	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/storagemodels"
)

// Store is an in-memory implementation of datastore.DataStore[V] backed by
// a Go map. It performs no locking; callers provide external mutual
// exclusion when sharing a container between goroutines.
type Store[V any] struct {
	m map[storagemodels.EntityID]V
}

// New creates a new in-memory store.
func New[V any]() *Store[V] {
	return &Store[V]{
		m: make(map[storagemodels.EntityID]V),
	}
}

// Get returns the value stored at id.
func (s *Store[V]) Get(id storagemodels.EntityID) (V, error) {
	if v, ok := s.m[id]; ok {
		return v, nil
	}
	var zero V
	return zero, errors.NewEntityNotFoundError(uint64(id))
}

// Set inserts or fully replaces the value stored at id.
func (s *Store[V]) Set(id storagemodels.EntityID, value V) {
	s.m[id] = value
}

// Remove deletes the record at id, if present.
func (s *Store[V]) Remove(id storagemodels.EntityID) {
	delete(s.m, id)
}

// Len returns the number of stored records.
func (s *Store[V]) Len() int {
	return len(s.m)
}

// IDs iterates over all stored entity ids in unspecified order.
func (s *Store[V]) IDs() iter.Seq[storagemodels.EntityID] {
	return func(yield func(storagemodels.EntityID) bool) {
		for id := range s.m {
			if !yield(id) {
				return
			}
		}
	}
}
