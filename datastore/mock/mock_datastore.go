/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides a configurable DataStore implementation for testing
package mock

import (
	"iter"

	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/storagemodels"
)

// DataStore is a mock implementation of datastore.DataStore[V] for testing
type DataStore[V any] struct {
	data     map[storagemodels.EntityID]V
	getError error
	onSet    func(storagemodels.EntityID, V)
	onRemove func(storagemodels.EntityID)
}

// New creates a new mock DataStore
func New[V any]() *DataStore[V] {
	return &DataStore[V]{
		data: make(map[storagemodels.EntityID]V),
	}
}

// WithGetError makes every Get return err
func (m *DataStore[V]) WithGetError(err error) *DataStore[V] {
	m.getError = err
	return m
}

// WithOnSet installs a callback observed on every Set
func (m *DataStore[V]) WithOnSet(f func(storagemodels.EntityID, V)) *DataStore[V] {
	m.onSet = f
	return m
}

// WithOnRemove installs a callback observed on every Remove
func (m *DataStore[V]) WithOnRemove(f func(storagemodels.EntityID)) *DataStore[V] {
	m.onRemove = f
	return m
}

// Get retrieves the value stored at id
func (m *DataStore[V]) Get(id storagemodels.EntityID) (V, error) {
	if m.getError != nil {
		var zero V
		return zero, m.getError
	}
	if v, ok := m.data[id]; ok {
		return v, nil
	}
	var zero V
	return zero, errors.NewEntityNotFoundError(uint64(id))
}

// Set stores a value at id
func (m *DataStore[V]) Set(id storagemodels.EntityID, value V) {
	if m.onSet != nil {
		m.onSet(id, value)
	}
	m.data[id] = value
}

// Remove deletes the record at id
func (m *DataStore[V]) Remove(id storagemodels.EntityID) {
	if m.onRemove != nil {
		m.onRemove(id)
	}
	delete(m.data, id)
}

// Len returns the number of stored records
func (m *DataStore[V]) Len() int {
	return len(m.data)
}

// IDs iterates over all stored entity ids
func (m *DataStore[V]) IDs() iter.Seq[storagemodels.EntityID] {
	return func(yield func(storagemodels.EntityID) bool) {
		for id := range m.data {
			if !yield(id) {
				return
			}
		}
	}
}
