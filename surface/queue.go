// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/readback"
)

// BufferQueue is a producer/consumer buffer queue implementing
// readback.Surface. It has mailbox semantics: Queue replaces the
// retained buffer, and LatestBuffer always consumes the most recently
// queued one. A surface that has never seen a Queue call reports
// SourceEmpty; a detached surface reports SourceInvalid.
//
// BufferQueue is safe for concurrent use.
type BufferQueue struct {
	mu       sync.Mutex
	latest   *Buffer
	queued   bool
	detached bool
}

// NewBufferQueue creates an empty buffer queue.
func NewBufferQueue() *BufferQueue {
	return &BufferQueue{}
}

// Queue publishes a buffer as the surface's newest content, replacing
// any previously queued buffer. A nil buffer is ignored. Queueing on a
// detached surface is ignored.
func (q *BufferQueue) Queue(b *Buffer) {
	if b == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.detached {
		return
	}
	q.latest = b
	q.queued = true
}

// LatestBuffer returns the most recently queued buffer.
func (q *BufferQueue) LatestBuffer() (readback.Texture, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.detached {
		return nil, fmt.Errorf("%w: surface is detached", readback.ErrSourceInvalid)
	}
	if !q.queued {
		return nil, fmt.Errorf("%w: no buffer has been queued", readback.ErrSourceEmpty)
	}
	return q.latest, nil
}

// Detach disconnects the surface from its producer. Subsequent
// LatestBuffer calls fail with SourceInvalid and subsequent Queue calls
// are ignored. Detach is idempotent.
func (q *BufferQueue) Detach() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.detached = true
	q.latest = nil
}

// Ensure BufferQueue implements readback.Surface.
var _ readback.Surface = (*BufferQueue)(nil)
