/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multikeydict/datastore/mock"
	"github.com/suparena/multikeydict/errors"
	"github.com/suparena/multikeydict/registry"
	"github.com/suparena/multikeydict/storagemodels"
)

func TestWithDataStore(t *testing.T) {
	var sets []storagemodels.EntityID
	var removes []storagemodels.EntityID
	ds := mock.New[stock]().
		WithOnSet(func(id storagemodels.EntityID, _ stock) { sets = append(sets, id) }).
		WithOnRemove(func(id storagemodels.EntityID) { removes = append(removes, id) })

	c, err := New(stockTypes, registry.ByIndex(0), WithDataStore[stock](ds))
	require.NoError(t, err)

	require.NoError(t, c.SetKeys([]storagemodels.Key{1, "AAPL", nil}, stock{Price: 150.0}))
	require.NoError(t, c.Delete(1))

	assert.Len(t, sets, 1)
	assert.Equal(t, sets, removes, "the removed entity is the one that was stored")
}

func TestBrokenInvariantSurfacesEntityNotFound(t *testing.T) {
	ds := mock.New[stock]().WithGetError(errors.NewEntityNotFoundError(1))
	c, err := New(stockTypes, registry.ByIndex(0), WithDataStore[stock](ds))
	require.NoError(t, err)

	require.NoError(t, c.Set(1, stock{Price: 150.0}))

	_, err = c.Get(1)
	assert.True(t, errors.IsEntityNotFound(err))
	assert.False(t, errors.IsKeyNotFound(err))
}
