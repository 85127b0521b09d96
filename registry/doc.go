/*
Package registry manages the key-type catalog for multikeydict.

A registry is the fixed, ordered list of key-type names a container was
constructed with, plus the movable default-type pointer. Catalog positions
(TypeIndex) are assigned at construction, 0-based, and stable for the
registry's lifetime.

Type References:
Key types are referenced explicitly by name or by position:

	r, err := registry.New([]string{"table_id", "stock_code", "stock_name"}, registry.ByName("table_id"))

	t, err := r.Resolve(registry.ByName("stock_code"))
	t, err := r.Resolve(registry.ByIndex(2))

Default Type:
The default type is used whenever a caller supplies a bare key instead of a
(type, key) pair:

	err := r.SetDefault(registry.ByName("stock_code"))
	t := r.Default()

The registry performs no locking; like the rest of the library it expects
external synchronization when shared between goroutines.
*/
package registry
