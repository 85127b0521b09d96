/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/registry"
	"github.com/suparena/multikeydict/storagemodels"
)

// Get returns the value indexed under the default key type at key. The
// returned value is the live stored value; callers must not rely on
// mutation isolation.
func (c *Container[V]) Get(key storagemodels.Key) (V, error) {
	p, err := c.normalizeBare(key)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.getPair(p)
}

// GetBy returns the value indexed under an explicit key type at key.
func (c *Container[V]) GetBy(ref registry.Ref, key storagemodels.Key) (V, error) {
	t, err := c.resolveType(ref)
	if err != nil {
		var zero V
		return zero, err
	}
	return c.getPair(pair{t: t, key: key})
}

func (c *Container[V]) getPair(p pair) (V, error) {
	id, ok := c.idx.Get(p.t, p.key)
	if !ok {
		var zero V
		return zero, errors.NewKeyNotFoundError(c.types.Name(p.t), p.key)
	}
	return c.data.Get(id)
}

// Lookup is the comma-ok form of Get.
func (c *Container[V]) Lookup(key storagemodels.Key) (V, bool) {
	v, err := c.Get(key)
	return v, err == nil
}

// LookupBy is the comma-ok form of GetBy.
func (c *Container[V]) LookupBy(ref registry.Ref, key storagemodels.Key) (V, bool) {
	v, err := c.GetBy(ref, key)
	return v, err == nil
}

// GetOr returns the value stored under the default type at key, or fallback
// when the key is absent.
func (c *Container[V]) GetOr(key storagemodels.Key, fallback V) V {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return fallback
}

// Contains reports whether the default key type indexes key.
func (c *Container[V]) Contains(key storagemodels.Key) bool {
	if key == nil {
		return false
	}
	_, ok := c.idx.Get(c.types.Default(), key)
	return ok
}

// ContainsBy reports whether the referenced key type indexes key. An
// unresolvable type reference reports false.
func (c *Container[V]) ContainsBy(ref registry.Ref, key storagemodels.Key) bool {
	t, err := c.resolveType(ref)
	if err != nil {
		return false
	}
	_, ok := c.idx.Get(t, key)
	return ok
}
