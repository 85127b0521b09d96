/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/storagemodels"
)

func TestStore(t *testing.T) {
	s := New[string]()

	// 1. Set
	s.Set(1, "apple")
	s.Set(2, "google")

	// 2. Get
	v, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "apple", v)

	_, err = s.Get(3)
	assert.True(t, errors.IsEntityNotFound(err))

	// 3. Overwrite is a full replace
	s.Set(1, "apple inc")
	v, err = s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "apple inc", v)
	assert.Equal(t, 2, s.Len())

	// 4. Remove
	s.Remove(1)
	_, err = s.Get(1)
	assert.True(t, errors.IsEntityNotFound(err))
	assert.Equal(t, 1, s.Len())

	// Removing an absent id is a no-op.
	s.Remove(42)
	assert.Equal(t, 1, s.Len())
}

func TestStoreIDs(t *testing.T) {
	s := New[int]()
	for i := 1; i <= 5; i++ {
		s.Set(storagemodels.EntityID(i), i*10)
	}

	seen := make(map[storagemodels.EntityID]bool)
	for id := range s.IDs() {
		seen[id] = true
	}
	assert.Len(t, seen, 5)

	// The sequence is restartable.
	n := 0
	for range s.IDs() {
		n++
	}
	assert.Equal(t, 5, n)
}
