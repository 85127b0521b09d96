/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suparena/multikeydict/storagemodels"
)

func TestKeyGeneratorMonotonic(t *testing.T) {
	g := NewKeyGenerator()

	prev := storagemodels.NoEntity
	for i := 0; i < 1000; i++ {
		id := g.Next()
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestKeyGeneratorNeverZero(t *testing.T) {
	g := NewKeyGenerator()
	assert.NotEqual(t, storagemodels.NoEntity, g.Next())
}
