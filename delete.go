/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/registry"
	"github.com/suparena/multikeydict/storagemodels"
)

// Delete removes the entity indexed under the default key type at key. The
// whole entity is removed: its keys under every type and its value record.
func (c *Container[V]) Delete(key storagemodels.Key) error {
	p, err := c.normalizeBare(key)
	if err != nil {
		return err
	}
	return c.deletePair(p)
}

// DeleteBy removes the entity indexed under an explicit key type at key,
// with the same whole-entity semantics as Delete.
func (c *Container[V]) DeleteBy(ref registry.Ref, key storagemodels.Key) error {
	t, err := c.resolveType(ref)
	if err != nil {
		return err
	}
	return c.deletePair(pair{t: t, key: key})
}

func (c *Container[V]) deletePair(p pair) error {
	id, ok := c.idx.Get(p.t, p.key)
	if !ok {
		return errors.NewKeyNotFoundError(c.types.Name(p.t), p.key)
	}
	c.removeEntity(id)
	return nil
}

// Pop returns the value stored under the default type at key and removes
// the whole entity.
func (c *Container[V]) Pop(key storagemodels.Key) (V, error) {
	v, err := c.Get(key)
	if err != nil {
		var zero V
		return zero, err
	}
	if err := c.Delete(key); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// Purge removes index entries named by a positional key set. Pairs that
// match nothing are silently skipped; purge is bulk best-effort cleanup,
// unlike the strict point deletes.
//
// With deep false, only the named (type, key) mappings are removed; an
// entity keeps its value record and its keys under other types. If a
// shallow purge strips an entity's last remaining key, the value record is
// dropped with it, so the container never holds unreachable values.
//
// With deep true, every entity resolved by the pairs is removed whole, each
// at most once however many pairs name it.
func (c *Container[V]) Purge(keys []storagemodels.Key, deep bool) error {
	pairs, err := c.normalizeKeys(keys)
	if err != nil {
		return err
	}
	c.purgePairs(pairs, deep)
	return nil
}

// PurgeKey is Purge for a single bare key under the default type.
func (c *Container[V]) PurgeKey(key storagemodels.Key, deep bool) error {
	p, err := c.normalizeBare(key)
	if err != nil {
		return err
	}
	c.purgePairs([]pair{p}, deep)
	return nil
}

func (c *Container[V]) purgePairs(pairs []pair, deep bool) {
	if deep {
		var ids []storagemodels.EntityID
		for _, p := range pairs {
			if id, ok := c.idx.Get(p.t, p.key); ok && !containsID(ids, id) {
				ids = append(ids, id)
			}
		}
		for _, id := range ids {
			c.removeEntity(id)
		}
		return
	}

	for _, p := range pairs {
		id, ok := c.idx.Get(p.t, p.key)
		if !ok {
			continue
		}
		c.idx.Remove(p.t, p.key)
		if c.idx.TypesFor(id) == 0 {
			c.data.Remove(id)
		}
	}
}

func containsID(ids []storagemodels.EntityID, id storagemodels.EntityID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// removeEntity destroys an entity: all of its index entries and its value
// record.
func (c *Container[V]) removeEntity(id storagemodels.EntityID) {
	c.idx.RemoveAllFor(id)
	c.data.Remove(id)
}

// Clear removes every entity. Entity ids are not reused afterwards.
func (c *Container[V]) Clear() {
	for id := range c.data.IDs() {
		c.idx.RemoveAllFor(id)
		c.data.Remove(id)
	}
}
