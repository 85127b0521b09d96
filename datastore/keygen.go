/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import "github.com/suparena/multikeydict/storagemodels"

// KeyGenerator allocates entity ids. Allocation is strictly monotonic and
// ids are never reused, not even after the entity they identified is
// deleted. Reuse would let a stale external reference silently alias a new,
// unrelated entity.
type KeyGenerator struct {
	last storagemodels.EntityID
}

// NewKeyGenerator returns a generator whose first allocation is 1.
// storagemodels.NoEntity (0) is never handed out.
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{}
}

// Next returns a fresh entity id, distinct from every id allocated before.
func (g *KeyGenerator) Next() storagemodels.EntityID {
	g.last++
	return g.last
}

// Clone returns a generator that continues from the same position, so ids
// minted by the clone never collide with ids the original already issued.
func (g *KeyGenerator) Clone() *KeyGenerator {
	return &KeyGenerator{last: g.last}
}
