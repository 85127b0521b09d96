/*
Package multikeydict provides an in-memory associative container whose
values can be looked up through several independent, parallel namespaces of
keys ("key types"). One logical value, a stock record say, can be
addressed by a numeric table id, a stock code and a stock name at the same
time, without duplicating the value.

Internally the container keeps a single value store (entity id -> value) and
a per-type key index (key type -> key -> entity id) and enforces their
mutual consistency across insertion, lookup, deletion, bulk removal and
default-type changes.

Basic Usage:

	c, err := multikeydict.New[Stock](
	    []string{"table_id", "stock_code", "stock_name"},
	    registry.ByName("table_id"),
	)

	// Bind one value under several key types in one call.
	err = c.SetKeys([]storagemodels.Key{1, "AAPL", "Apple Inc."}, apple)

	// Look the value up through any of them.
	v, err := c.Get(1)                                      // default type
	v, err = c.GetBy(registry.ByName("stock_code"), "AAPL") // explicit type

	// Move the default and use bare keys.
	err = c.SetDefaultType(registry.ByName("stock_code"))
	v, err = c.Get("AAPL")

Key Features:
  - One value record per entity however many key types address it
  - At most one key per type per entity; reassignment replaces the old key
  - Conflict detection: one assignment may not silently merge two entities
  - Entity ids allocated monotonically and never reused
  - Insertion-ordered, restartable iteration per key type
  - Shallow and deep bulk removal (Purge)

Concurrency:
The container performs no internal locking and its operations are
multi-step. Callers sharing a container between goroutines must serialize
all access externally; no operation is safe to interleave with another.

The cache subpackage layers a record-map cache with composite keys on top of
the container, and the config subpackage builds containers and caches from
YAML definitions.
*/
package multikeydict
