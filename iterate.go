/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	"fmt"
	"iter"

	"github.com/suparena/multikeydict/datastore/memory"
	"github.com/suparena/multikeydict/registry"
	"github.com/suparena/multikeydict/storagemodels"
)

// Keys iterates the default key type's keys in first-insertion order. The
// sequence is lazy and restartable; the container must not be mutated while
// iterating.
func (c *Container[V]) Keys() iter.Seq[storagemodels.Key] {
	return c.idx.Keys(c.types.Default())
}

// KeysOf iterates an explicit key type's keys in first-insertion order.
func (c *Container[V]) KeysOf(ref registry.Ref) (iter.Seq[storagemodels.Key], error) {
	t, err := c.resolveType(ref)
	if err != nil {
		return nil, err
	}
	return c.idx.Keys(t), nil
}

// Values iterates the stored values in the default key type's insertion
// order.
func (c *Container[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range c.Items() {
			if !yield(v) {
				return
			}
		}
	}
}

// Items iterates (key, value) pairs over the default key type in insertion
// order.
func (c *Container[V]) Items() iter.Seq2[storagemodels.Key, V] {
	return func(yield func(storagemodels.Key, V) bool) {
		for key, id := range c.idx.Entries(c.types.Default()) {
			v, err := c.data.Get(id)
			if err != nil {
				// An indexed id without a value record is a broken
				// container invariant, not a caller error.
				panic(fmt.Sprintf("multikeydict: %v", err))
			}
			if !yield(key, v) {
				return
			}
		}
	}
}

// Len returns the number of entities in the container, which by the
// index/store consistency invariant equals the number of distinct ids
// across all key-type buckets.
func (c *Container[V]) Len() int {
	return c.data.Len()
}

// LenOf returns the number of keys indexed under an explicit key type.
func (c *Container[V]) LenOf(ref registry.Ref) (int, error) {
	t, err := c.resolveType(ref)
	if err != nil {
		return 0, err
	}
	return c.idx.Len(t), nil
}

// Copy returns an independent container with the same catalog, default
// type, index state (including per-bucket insertion order) and values.
// Values themselves are copied shallowly. The copy is always backed by the
// in-memory store.
func (c *Container[V]) Copy() *Container[V] {
	out := &Container[V]{
		types: c.types.Clone(),
		idx:   c.idx.Clone(),
		data:  memory.New[V](),
		gen:   c.gen.Clone(),
	}
	for id := range c.data.IDs() {
		v, err := c.data.Get(id)
		if err != nil {
			panic(fmt.Sprintf("multikeydict: %v", err))
		}
		out.data.Set(id, v)
	}
	return out
}

// Equal reports whether both containers hold the same key/value pairs under
// their respective default key types, using eq to compare values. Insertion
// order is not part of equality.
func (c *Container[V]) Equal(other *Container[V], eq func(a, b V) bool) bool {
	if other == nil {
		return false
	}
	def := c.types.Default()
	if c.idx.Len(def) != other.idx.Len(other.types.Default()) {
		return false
	}
	for key, v := range c.Items() {
		ov, ok := other.Lookup(key)
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}
