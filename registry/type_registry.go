/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"slices"

	"github.com/suparena/multikeydict/errors"
)

// TypeIndex is the stable, 0-based position of a key type in the catalog.
type TypeIndex int

type refKind int

const (
	refZero refKind = iota
	refName
	refIndex
)

// Ref references a key type either by name or by catalog position.
// The zero Ref is invalid and never resolves.
type Ref struct {
	kind  refKind
	name  string
	index int
}

// ByName references a key type by its registered name.
func ByName(name string) Ref {
	return Ref{kind: refName, name: name}
}

// ByIndex references a key type by its catalog position.
func ByIndex(i int) Ref {
	return Ref{kind: refIndex, index: i}
}

func (r Ref) String() string {
	switch r.kind {
	case refName:
		return fmt.Sprintf("name %q", r.name)
	case refIndex:
		return fmt.Sprintf("index %d", r.index)
	default:
		return "<zero ref>"
	}
}

// TypeRegistry is the fixed, ordered catalog of key-type names. The catalog
// is immutable after construction; only the default-type pointer moves.
type TypeRegistry struct {
	names  []string
	byName map[string]TypeIndex
	def    TypeIndex
}

// New builds a registry from an ordered, non-empty list of key-type names
// and an explicit default type reference.
func New(names []string, defaultType Ref) (*TypeRegistry, error) {
	if len(names) == 0 {
		return nil, errors.NewConfigurationError("types", "at least one key type is required")
	}

	byName := make(map[string]TypeIndex, len(names))
	for i, name := range names {
		if name == "" {
			return nil, errors.NewConfigurationError("types", fmt.Sprintf("empty key type name at position %d", i))
		}
		if _, exists := byName[name]; exists {
			return nil, errors.NewConfigurationError("types", fmt.Sprintf("duplicate key type %q", name))
		}
		byName[name] = TypeIndex(i)
	}

	r := &TypeRegistry{
		names:  slices.Clone(names),
		byName: byName,
	}
	if defaultType.kind == refZero {
		return nil, errors.NewConfigurationError("defaultType", "a default key type is required")
	}
	if err := r.SetDefault(defaultType); err != nil {
		return nil, errors.NewConfigurationError("defaultType", err.Error())
	}
	return r, nil
}

// Resolve maps a type reference to its canonical catalog position.
func (r *TypeRegistry) Resolve(ref Ref) (TypeIndex, error) {
	switch ref.kind {
	case refName:
		if t, ok := r.byName[ref.name]; ok {
			return t, nil
		}
	case refIndex:
		if ref.index >= 0 && ref.index < len(r.names) {
			return TypeIndex(ref.index), nil
		}
	}
	return 0, errors.NewUnknownTypeError(ref.String())
}

// SetDefault resolves ref and stores it as the default key type.
func (r *TypeRegistry) SetDefault(ref Ref) error {
	t, err := r.Resolve(ref)
	if err != nil {
		return err
	}
	r.def = t
	return nil
}

// Default returns the current default key type.
func (r *TypeRegistry) Default() TypeIndex {
	return r.def
}

// Name returns the name registered at t. t must come from Resolve or Default.
func (r *TypeRegistry) Name(t TypeIndex) string {
	return r.names[t]
}

// Names returns the ordered key-type catalog.
func (r *TypeRegistry) Names() []string {
	return slices.Clone(r.names)
}

// Len returns the number of registered key types.
func (r *TypeRegistry) Len() int {
	return len(r.names)
}

// Clone returns an independent registry with the same catalog and default.
func (r *TypeRegistry) Clone() *TypeRegistry {
	byName := make(map[string]TypeIndex, len(r.byName))
	for name, t := range r.byName {
		byName[name] = t
	}
	return &TypeRegistry{
		names:  slices.Clone(r.names),
		byName: byName,
		def:    r.def,
	}
}
