/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	stderrors "errors"
	"slices"

	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/storagemodels"
)

// Set binds value under the default key type at key, creating a new entity
// or replacing the value of the entity already indexed there.
func (c *Container[V]) Set(key storagemodels.Key, value V) error {
	p, err := c.normalizeBare(key)
	if err != nil {
		return err
	}
	return c.setPairs([]pair{p}, value)
}

// SetKeys binds value under a positional key set: one slot per registered
// key type, nil slots skipped. If the supplied keys resolve to one existing
// entity, that entity is updated; if they resolve to none, a new entity is
// created; if they resolve to two or more distinct entities, SetKeys fails
// with a key conflict and nothing is modified. A single assignment may not
// silently merge pre-existing entities.
func (c *Container[V]) SetKeys(keys []storagemodels.Key, value V) error {
	pairs, err := c.normalizeKeys(keys)
	if err != nil {
		return err
	}
	return c.setPairs(pairs, value)
}

// setPairs is the write path shared by Set, SetKeys and Update. The conflict
// check completes before any mutation, so a failing call leaves the
// container untouched.
func (c *Container[V]) setPairs(pairs []pair, value V) error {
	id := storagemodels.NoEntity
	var conflicting []uint64
	for _, p := range pairs {
		existing, ok := c.idx.Get(p.t, p.key)
		if !ok {
			continue
		}
		if id == storagemodels.NoEntity {
			id = existing
			continue
		}
		if existing != id {
			if len(conflicting) == 0 {
				conflicting = append(conflicting, uint64(id))
			}
			conflicting = appendUnique(conflicting, uint64(existing))
		}
	}
	if len(conflicting) > 0 {
		keys := make([]any, len(pairs))
		for i, p := range pairs {
			keys[i] = p.key
		}
		return errors.NewKeyConflictError(keys, conflicting)
	}

	if id == storagemodels.NoEntity {
		id = c.gen.Next()
	}
	c.data.Set(id, value)
	for _, p := range pairs {
		c.idx.Put(p.t, p.key, id)
	}
	return nil
}

func appendUnique(ids []uint64, id uint64) []uint64 {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// GetOrSet returns the value stored under the default type at key,
// inserting value first if the key is absent.
func (c *Container[V]) GetOrSet(key storagemodels.Key, value V) (V, error) {
	if v, ok := c.Lookup(key); ok {
		return v, nil
	}
	if err := c.Set(key, value); err != nil {
		var zero V
		return zero, err
	}
	return value, nil
}

// Update applies SetKeys for each entry in source order. Later entries
// override earlier ones. An entry that fails (a key conflict or a malformed
// key set) is skipped; the remaining entries are still applied, and the
// joined per-entry errors are returned.
func (c *Container[V]) Update(entries []storagemodels.Entry[V]) error {
	var errs []error
	for _, e := range entries {
		if err := c.SetKeys(e.Keys, e.Value); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

// UpdateFrom merges another container into this one, entity by entity, with
// each entity's full key set. Both containers must share an identical
// key-type catalog. Entities carrying a default-type key are applied first,
// in that bucket's insertion order; the remainder follow in unspecified
// order. Per-entry conflicts are skipped and reported joined, as in Update.
func (c *Container[V]) UpdateFrom(other *Container[V]) error {
	if !slices.Equal(c.types.Names(), other.types.Names()) {
		return errors.NewConfigurationError("source",
			"containers have different key-type catalogs")
	}

	var errs []error
	seen := make(map[storagemodels.EntityID]bool)
	apply := func(id storagemodels.EntityID) {
		if seen[id] {
			return
		}
		seen[id] = true
		value, err := other.data.Get(id)
		if err != nil {
			errs = append(errs, err)
			return
		}
		if err := c.SetKeys(other.idx.KeySet(id), value); err != nil {
			errs = append(errs, err)
		}
	}

	for _, id := range other.idx.Entries(other.types.Default()) {
		apply(id)
	}
	for id := range other.data.IDs() {
		apply(id)
	}
	return stderrors.Join(errs...)
}
