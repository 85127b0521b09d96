/*
Package datastore defines the value-storage layer of multikeydict.

The main interface is DataStore[V], which holds entity records keyed by
their internal entity id:

	type DataStore[V any] interface {
	    Get(id storagemodels.EntityID) (V, error)
	    Set(id storagemodels.EntityID, value V)
	    Remove(id storagemodels.EntityID)
	    Len() int
	    IDs() iter.Seq[storagemodels.EntityID]
	}

Implementations:
  - memory: map-backed implementation used by default
  - mock: configurable implementation for testing

The package also provides KeyGenerator, the monotonic allocator of entity
ids. Ids are never reused across the lifetime of a generator, which keeps
deleted entities from aliasing later, unrelated ones.
*/
package datastore
