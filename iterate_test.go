/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multikeydict/registry"
	"github.com/suparena/multikeydict/storagemodels"
)

func seedStocks(t *testing.T) *Container[stock] {
	t.Helper()
	c := newStocks(t)
	require.NoError(t, c.SetKeys([]storagemodels.Key{1, "AAPL", "Apple Inc."}, stock{Price: 150.0}))
	require.NoError(t, c.SetKeys([]storagemodels.Key{2, "GOOG", "Alphabet Inc."}, stock{Price: 1200.0}))
	require.NoError(t, c.SetKeys([]storagemodels.Key{3, "MSFT", "Microsoft Corp."}, stock{Price: 200.0}))
	return c
}

func TestKeysInsertionOrder(t *testing.T) {
	c := seedStocks(t)

	var keys []storagemodels.Key
	for k := range c.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []storagemodels.Key{1, 2, 3}, keys)

	// Restartable.
	n := 0
	for range c.Keys() {
		n++
	}
	assert.Equal(t, 3, n)
}

func TestKeysOf(t *testing.T) {
	c := seedStocks(t)

	seq, err := c.KeysOf(registry.ByName("stock_code"))
	require.NoError(t, err)

	var keys []storagemodels.Key
	for k := range seq {
		keys = append(keys, k)
	}
	assert.Equal(t, []storagemodels.Key{"AAPL", "GOOG", "MSFT"}, keys)

	_, err = c.KeysOf(registry.ByName("isin"))
	require.Error(t, err)
}

func TestValuesZipOrder(t *testing.T) {
	c := seedStocks(t)

	var prices []float64
	for v := range c.Values() {
		prices = append(prices, v.Price)
	}
	assert.Equal(t, []float64{150.0, 1200.0, 200.0}, prices)
}

func TestItems(t *testing.T) {
	c := seedStocks(t)

	got := make(map[storagemodels.Key]float64)
	var order []storagemodels.Key
	for k, v := range c.Items() {
		got[k] = v.Price
		order = append(order, k)
	}
	assert.Equal(t, []storagemodels.Key{1, 2, 3}, order)
	assert.Equal(t, 1200.0, got[2])

	// Early break leaves the container intact.
	for range c.Items() {
		break
	}
	assert.Equal(t, 3, c.Len())
}

func TestLenCountsEntitiesNotBucketSum(t *testing.T) {
	c := newStocks(t)

	// One entity known under all three types.
	require.NoError(t, c.SetKeys([]storagemodels.Key{1, "AAPL", "Apple Inc."}, stock{}))
	// One entity known only by code.
	require.NoError(t, c.SetKeys([]storagemodels.Key{nil, "GOOG", nil}, stock{}))

	assert.Equal(t, 2, c.Len())

	n, err := c.LenOf(registry.ByName("table_id"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.LenOf(registry.ByName("stock_code"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = c.LenOf(registry.ByName("isin"))
	require.Error(t, err)
}

func TestIterationFollowsDefaultType(t *testing.T) {
	c := seedStocks(t)
	require.NoError(t, c.SetDefaultType(registry.ByName("stock_code")))

	var keys []storagemodels.Key
	for k := range c.Keys() {
		keys = append(keys, k)
	}
	assert.Equal(t, []storagemodels.Key{"AAPL", "GOOG", "MSFT"}, keys)
}
