/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/multikeydict/storagemodels"
)

func TestStream(t *testing.T) {
	c := seedStocks(t)

	var progressCalls int
	ch := c.Stream(context.Background(),
		storagemodels.WithBufferSize(1),
		storagemodels.WithProgressHandler(1, func(p storagemodels.StreamProgress) {
			progressCalls++
		}),
	)

	var keys []storagemodels.Key
	var lastIndex int64 = -1
	for result := range ch {
		keys = append(keys, result.Key)
		assert.Equal(t, lastIndex+1, result.Meta.Index)
		lastIndex = result.Meta.Index
	}

	assert.Equal(t, []storagemodels.Key{1, 2, 3}, keys)
	assert.Equal(t, 3, progressCalls)
}

func TestStreamSnapshotsBeforeReturning(t *testing.T) {
	c := seedStocks(t)

	ch := c.Stream(context.Background())
	// Mutations after the call must not affect what gets streamed.
	require.NoError(t, c.Delete(2))

	n := 0
	for range ch {
		n++
	}
	assert.Equal(t, 3, n)
}

func TestStreamCancellation(t *testing.T) {
	c := seedStocks(t)

	ctx, cancel := context.WithCancel(context.Background())
	ch := c.Stream(ctx, storagemodels.WithBufferSize(0))

	// Take one item, then cancel; the channel must close.
	<-ch
	cancel()
	for range ch {
	}
}

func TestStreamEmpty(t *testing.T) {
	c := newStocks(t)

	n := 0
	for range c.Stream(context.Background()) {
		n++
	}
	assert.Equal(t, 0, n)
}
