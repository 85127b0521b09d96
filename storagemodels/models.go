/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// EntityID is the opaque internal identifier uniting all of one entity's
// per-type keys to its single value record. IDs are minted once per logical
// entity and never reused, so a stale reference to a deleted entity can
// never alias a newer, unrelated one.
type EntityID uint64

// NoEntity is the zero EntityID; it is never allocated.
const NoEntity EntityID = 0

// Key is a caller-supplied lookup key, meaningful within one key type's
// namespace. The dynamic type must be comparable (it is used as a map key);
// a nil Key in a positional key set means "no key of this type".
type Key = any

// TypeKey addresses one index entry: a key within a named key type.
type TypeKey struct {
	// Type is the key type name (e.g. "stock_code").
	Type string
	// Key is the lookup key within that type's namespace.
	Key Key
}

// Entry is one (key set, value) pair for bulk updates.
// Keys is positional: one slot per registered key type, nil slots skipped.
type Entry[V any] struct {
	Keys  []Key
	Value V
}
