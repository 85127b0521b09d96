/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"iter"

	"github.com/suparena/multikeydict/storagemodels"
)

// DataStore maps an entity id to its stored value. It is the single source
// of truth for what an entity is; how an entity is found lives in the index.
type DataStore[V any] interface {
	// Get returns the value stored at id. An absent id yields an
	// errors.EntityNotFoundError.
	Get(id storagemodels.EntityID) (V, error)

	// Set inserts or fully replaces the value stored at id.
	Set(id storagemodels.EntityID, value V)

	// Remove deletes the record at id. Removing an absent id is a no-op.
	Remove(id storagemodels.EntityID)

	// Len returns the number of stored records.
	Len() int

	// IDs iterates over all stored entity ids in unspecified order.
	IDs() iter.Seq[storagemodels.EntityID]
}
