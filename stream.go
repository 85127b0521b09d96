/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package multikeydict

import (
	"context"
	"time"

	"github.com/suparena/multikeydict/storagemodels"
)

// Stream delivers the default key type's (key, value) pairs over a channel,
// in insertion order. The pairs are snapshotted synchronously before Stream
// returns, so the container may be mutated freely once the call completes;
// the snapshot is what gets streamed. The channel is closed after the last
// item or when ctx is cancelled.
func (c *Container[V]) Stream(ctx context.Context, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[V] {
	streamOpts := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&streamOpts)
	}

	type item struct {
		key   storagemodels.Key
		value V
	}
	snapshot := make([]item, 0, c.idx.Len(c.types.Default()))
	for key, v := range c.Items() {
		snapshot = append(snapshot, item{key: key, value: v})
	}

	ch := make(chan storagemodels.StreamResult[V], streamOpts.BufferSize)
	go func() {
		defer close(ch)

		progress := storagemodels.StreamProgress{StartTime: time.Now()}
		for i, it := range snapshot {
			result := storagemodels.StreamResult[V]{
				Key:   it.key,
				Value: it.value,
				Meta: storagemodels.StreamMeta{
					Index:     int64(i),
					Timestamp: time.Now(),
				},
			}

			select {
			case ch <- result:
			case <-ctx.Done():
				return
			}

			progress.ItemsProcessed++
			if streamOpts.ProgressHandler != nil &&
				progress.ItemsProcessed%int64(streamOpts.ProgressInterval) == 0 {
				streamOpts.ProgressHandler(progress)
			}
		}
	}()
	return ch
}
