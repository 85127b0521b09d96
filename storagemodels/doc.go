/*
Package storagemodels defines the data structures shared across multikeydict.

Key Types:

EntityID:
The opaque internal identifier that unites all of one entity's per-type keys
to its single value record. Allocation is monotonic; ids are never reused.

TypeKey:
Addresses a single index entry:

	tk := storagemodels.TypeKey{Type: "stock_code", Key: "AAPL"}

Entry:
One positional (key set, value) pair for bulk updates:

	entries := []storagemodels.Entry[Stock]{
	    {Keys: []storagemodels.Key{1, "AAPL", "Apple Inc."}, Value: apple},
	    {Keys: []storagemodels.Key{2, "GOOG", nil}, Value: alphabet},
	}

StreamResult / StreamOption:
Channel-based iteration over a container's default key type:

	ch := c.Stream(ctx,
	    storagemodels.WithBufferSize(64),
	    storagemodels.WithProgressHandler(100, progressFunc),
	)

These types provide a consistent surface across the container, the cache and
the configuration loader.
*/
package storagemodels
