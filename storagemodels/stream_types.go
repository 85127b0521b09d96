/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import "time"

// StreamResult represents a single item delivered by a container stream
type StreamResult[V any] struct {
	Key   Key        // The key under the streamed key type
	Value V          // The stored value
	Meta  StreamMeta // Metadata about this item
}

// StreamMeta contains metadata about a streamed item
type StreamMeta struct {
	Index     int64     // Item index in stream (0-based)
	Timestamp time.Time // When the item was emitted
}

// StreamProgress tracks streaming progress
type StreamProgress struct {
	ItemsProcessed int64     // Total items emitted so far
	StartTime      time.Time // When streaming started
}

// StreamOptions configures streaming behavior
type StreamOptions struct {
	BufferSize       int                  // Channel buffer size (default: 100)
	ProgressInterval int                  // Emit progress every N items (default: 0, disabled)
	ProgressHandler  func(StreamProgress) // Optional progress callback
}

// StreamOption is a functional option for configuring streaming
type StreamOption func(*StreamOptions)

// DefaultStreamOptions returns default streaming options
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		BufferSize: 100,
	}
}

// WithBufferSize sets the channel buffer size
func WithBufferSize(size int) StreamOption {
	return func(opts *StreamOptions) {
		opts.BufferSize = size
	}
}

// WithProgressHandler sets a progress callback invoked every interval items.
// An interval below 1 is treated as 1.
func WithProgressHandler(interval int, handler func(StreamProgress)) StreamOption {
	return func(opts *StreamOptions) {
		if interval < 1 {
			interval = 1
		}
		opts.ProgressInterval = interval
		opts.ProgressHandler = handler
	}
}
