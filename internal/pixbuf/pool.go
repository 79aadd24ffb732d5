// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import "sync"

// Pool is a thread-safe pool for reusing released Buffer instances.
//
// Pool groups buffers by their geometry, so a texture recreated at the
// same size reuses the previous backing memory instead of allocating.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Buffer
	maxSize int // max buffers per bucket
}

// poolKey identifies a bucket of identical buffer geometries.
type poolKey struct {
	width  int
	height int
	stride int
}

// NewPool creates a new buffer pool with the given maximum buffers per bucket.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Buffer),
		maxSize: maxPerBucket,
	}
}

// get pops a buffer with the given geometry, or returns nil if the
// bucket is empty. The returned buffer is zeroed and no longer released.
func (p *Pool) get(width, height, stride int) *Buffer {
	key := poolKey{width: width, height: height, stride: stride}

	p.mu.Lock()
	bucket := p.buckets[key]
	if len(bucket) == 0 {
		p.mu.Unlock()
		return nil
	}
	buf := bucket[len(bucket)-1]
	bucket[len(bucket)-1] = nil
	p.buckets[key] = bucket[:len(bucket)-1]
	p.mu.Unlock()

	buf.reset()
	return buf
}

// put stores a released buffer for reuse.
// If the bucket is at max capacity, the buffer is discarded.
func (p *Pool) put(buf *Buffer) {
	key := poolKey{width: buf.width, height: buf.height, stride: buf.stride}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers across all buckets.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
