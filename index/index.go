/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package index

import (
	"iter"
	"slices"

	"github.com/suparena/multikeydict/registry"
	"github.com/suparena/multikeydict/storagemodels"
)

// bucket is one key type's namespace: key -> entity id, with the keys kept
// in first-insertion order.
type bucket struct {
	ids   map[storagemodels.Key]storagemodels.EntityID
	order []storagemodels.Key
}

func newBucket() bucket {
	return bucket{ids: make(map[storagemodels.Key]storagemodels.EntityID)}
}

// Store maps (type index, key) to entity ids. It is the single source of
// truth for how an entity is found. A reverse map records, per entity, its
// current key under each type, which keeps the one-key-per-type rule cheap
// to enforce and whole-entity removal cheap to perform.
//
// The store performs no locking.
type Store struct {
	buckets []bucket
	reverse map[storagemodels.EntityID]map[registry.TypeIndex]storagemodels.Key
}

// New creates a store with one empty bucket per key type.
func New(numTypes int) *Store {
	buckets := make([]bucket, numTypes)
	for i := range buckets {
		buckets[i] = newBucket()
	}
	return &Store{
		buckets: buckets,
		reverse: make(map[storagemodels.EntityID]map[registry.TypeIndex]storagemodels.Key),
	}
}

// Get returns the entity id indexed under (t, key).
func (s *Store) Get(t registry.TypeIndex, key storagemodels.Key) (storagemodels.EntityID, bool) {
	id, ok := s.buckets[t].ids[key]
	return id, ok
}

// Put indexes id under (t, key). If id already held a different key under t,
// that prior key is removed first, so an entity never has two keys in one
// namespace. If key was bound to a different entity, that binding is
// replaced; the container rules this out for foreign entities by checking
// conflicts before any mutation.
func (s *Store) Put(t registry.TypeIndex, key storagemodels.Key, id storagemodels.EntityID) {
	if prev, ok := s.reverse[id][t]; ok {
		if prev == key {
			return
		}
		s.dropForward(t, prev)
	}
	if other, ok := s.buckets[t].ids[key]; ok {
		if other == id {
			return
		}
		s.dropReverse(t, other)
		s.dropForward(t, key)
	}

	b := &s.buckets[t]
	b.ids[key] = id
	b.order = append(b.order, key)

	r, ok := s.reverse[id]
	if !ok {
		r = make(map[registry.TypeIndex]storagemodels.Key)
		s.reverse[id] = r
	}
	r[t] = key
}

// Remove deletes the (t, key) mapping if present; otherwise it is a no-op.
func (s *Store) Remove(t registry.TypeIndex, key storagemodels.Key) {
	id, ok := s.buckets[t].ids[key]
	if !ok {
		return
	}
	s.dropForward(t, key)
	s.dropReverse(t, id)
}

// RemoveAllFor deletes every (type, key) entry mapping to id, across all
// types. Used for whole-entity deletion.
func (s *Store) RemoveAllFor(id storagemodels.EntityID) {
	for t, key := range s.reverse[id] {
		s.dropForward(t, key)
	}
	delete(s.reverse, id)
}

// KeyFor returns id's current key under t.
func (s *Store) KeyFor(t registry.TypeIndex, id storagemodels.EntityID) (storagemodels.Key, bool) {
	key, ok := s.reverse[id][t]
	return key, ok
}

// KeySet reconstructs id's full positional key set, nil for namespaces the
// entity has no key in.
func (s *Store) KeySet(id storagemodels.EntityID) []storagemodels.Key {
	keys := make([]storagemodels.Key, len(s.buckets))
	for t, key := range s.reverse[id] {
		keys[t] = key
	}
	return keys
}

// TypesFor returns the number of namespaces still holding a key for id.
func (s *Store) TypesFor(id storagemodels.EntityID) int {
	return len(s.reverse[id])
}

// Len returns the number of keys indexed under t.
func (s *Store) Len(t registry.TypeIndex) int {
	return len(s.buckets[t].ids)
}

// Keys iterates t's keys in first-insertion order. The sequence is
// restartable; the store must not be mutated during iteration.
func (s *Store) Keys(t registry.TypeIndex) iter.Seq[storagemodels.Key] {
	return func(yield func(storagemodels.Key) bool) {
		for _, key := range s.buckets[t].order {
			if !yield(key) {
				return
			}
		}
	}
}

// Entries iterates t's (key, entity id) pairs in first-insertion order.
func (s *Store) Entries(t registry.TypeIndex) iter.Seq2[storagemodels.Key, storagemodels.EntityID] {
	return func(yield func(storagemodels.Key, storagemodels.EntityID) bool) {
		b := &s.buckets[t]
		for _, key := range b.order {
			if !yield(key, b.ids[key]) {
				return
			}
		}
	}
}

// Clone returns an independent deep copy of the store.
func (s *Store) Clone() *Store {
	out := New(len(s.buckets))
	for t := range s.buckets {
		b := &s.buckets[t]
		ob := &out.buckets[t]
		ob.order = slices.Clone(b.order)
		for key, id := range b.ids {
			ob.ids[key] = id
		}
	}
	for id, keys := range s.reverse {
		r := make(map[registry.TypeIndex]storagemodels.Key, len(keys))
		for t, key := range keys {
			r[t] = key
		}
		out.reverse[id] = r
	}
	return out
}

func (s *Store) dropForward(t registry.TypeIndex, key storagemodels.Key) {
	b := &s.buckets[t]
	delete(b.ids, key)
	if i := slices.Index(b.order, key); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}
}

func (s *Store) dropReverse(t registry.TypeIndex, id storagemodels.EntityID) {
	r := s.reverse[id]
	delete(r, t)
	if len(r) == 0 {
		delete(s.reverse, id)
	}
}
