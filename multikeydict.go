/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	"fmt"

	"github.com/suparena/multikeydict/datastore"
	"github.com/suparena/multikeydict/datastore/memory"
	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/index"
	"github.com/suparena/multikeydict/registry"
	"github.com/suparena/multikeydict/storagemodels"
)

// Container is an in-memory associative container whose values can be looked
// up through several independent namespaces of keys. A single value may
// simultaneously be addressable by, say, a numeric table id, a stock code
// and a stock name, without duplicating the value.
//
// The container performs no locking. Its operations are multi-step and not
// safe to interleave; callers sharing a container between goroutines must
// serialize all access externally.
type Container[V any] struct {
	types *registry.TypeRegistry
	idx   *index.Store
	data  datastore.DataStore[V]
	gen   *datastore.KeyGenerator
}

// Option configures container construction.
type Option[V any] func(*Container[V])

// WithDataStore replaces the default in-memory value store. Intended for
// tests and instrumentation; the store must start empty.
func WithDataStore[V any](ds datastore.DataStore[V]) Option[V] {
	return func(c *Container[V]) {
		c.data = ds
	}
}

// New builds a container over the given ordered key-type names. Both the
// type list and the default type reference are mandatory.
func New[V any](types []string, defaultType registry.Ref, opts ...Option[V]) (*Container[V], error) {
	reg, err := registry.New(types, defaultType)
	if err != nil {
		return nil, err
	}

	c := &Container[V]{
		types: reg,
		idx:   index.New(reg.Len()),
		gen:   datastore.NewKeyGenerator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.data == nil {
		c.data = memory.New[V]()
	}
	return c, nil
}

// MustNew is like New but panics on configuration errors. Intended for
// package-level variables and tests.
func MustNew[V any](types []string, defaultType registry.Ref, opts ...Option[V]) *Container[V] {
	c, err := New(types, defaultType, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Types returns the ordered key-type catalog.
func (c *Container[V]) Types() []string {
	return c.types.Names()
}

// SetDefaultType changes the default key type used by bare-key operations.
func (c *Container[V]) SetDefaultType(ref registry.Ref) error {
	return c.types.SetDefault(ref)
}

// DefaultType returns the name of the current default key type.
func (c *Container[V]) DefaultType() string {
	return c.types.Name(c.types.Default())
}

// pair is one normalized (type, key) index coordinate.
type pair struct {
	t   registry.TypeIndex
	key storagemodels.Key
}

// normalizeBare turns a bare key into a single pair under the default type.
func (c *Container[V]) normalizeBare(key storagemodels.Key) (pair, error) {
	if key == nil {
		return pair{}, errors.NewConfigurationError("key", "bare key must not be nil")
	}
	return pair{t: c.types.Default(), key: key}, nil
}

// normalizeKeys turns a positional key set into ordered pairs. The slice
// length must equal the registered type count; nil slots mean "no key of
// this type"; at least one slot must be set. The positional form cannot
// name a type twice, so duplicate types are ruled out by construction.
func (c *Container[V]) normalizeKeys(keys []storagemodels.Key) ([]pair, error) {
	if len(keys) != c.types.Len() {
		return nil, errors.NewConfigurationError("keys",
			fmt.Sprintf("expected %d keys, got %d", c.types.Len(), len(keys)))
	}
	pairs := make([]pair, 0, len(keys))
	for i, key := range keys {
		if key == nil {
			continue
		}
		pairs = append(pairs, pair{t: registry.TypeIndex(i), key: key})
	}
	if len(pairs) == 0 {
		return nil, errors.NewConfigurationError("keys", "at least one key must be set")
	}
	return pairs, nil
}

// resolveType resolves an explicit type reference.
func (c *Container[V]) resolveType(ref registry.Ref) (registry.TypeIndex, error) {
	return c.types.Resolve(ref)
}
