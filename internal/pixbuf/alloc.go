// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"fmt"
	"math"
)

const (
	// DefaultRowAlignment is the default row alignment in bytes.
	// CoreVideo aligns pixel buffer rows to 64 bytes.
	DefaultRowAlignment = 64

	// DefaultMaxBytes is the default limit on a single buffer's backing memory.
	DefaultMaxBytes = 256 << 20
)

// Allocator creates buffers with aligned row strides and recycles
// released buffers through an optional Pool.
//
// The zero value is not usable; create allocators with NewAllocator.
type Allocator struct {
	alignment int
	maxBytes  int
	pool      *Pool
}

// AllocatorOption configures an Allocator during creation.
type AllocatorOption func(*Allocator)

// WithRowAlignment sets the row alignment in bytes. Values below 1 mean
// tightly packed rows.
func WithRowAlignment(n int) AllocatorOption {
	return func(a *Allocator) {
		if n < 1 {
			n = 1
		}
		a.alignment = n
	}
}

// WithMaxBytes limits the backing memory of a single buffer.
// Values below 1 remove the limit.
func WithMaxBytes(n int) AllocatorOption {
	return func(a *Allocator) {
		if n < 1 {
			n = math.MaxInt
		}
		a.maxBytes = n
	}
}

// WithPool recycles released buffers through p. A nil pool disables reuse.
func WithPool(p *Pool) AllocatorOption {
	return func(a *Allocator) {
		a.pool = p
	}
}

// NewAllocator creates an allocator with DefaultRowAlignment,
// DefaultMaxBytes and a small reuse pool.
func NewAllocator(opts ...AllocatorOption) *Allocator {
	a := &Allocator{
		alignment: DefaultRowAlignment,
		maxBytes:  DefaultMaxBytes,
		pool:      NewPool(2),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RowAlignment returns the row alignment in bytes.
func (a *Allocator) RowAlignment() int {
	return a.alignment
}

// Stride returns the aligned bytes per row for width pixels.
func (a *Allocator) Stride(width int) int {
	return alignUp(FormatBGRA32.RowBytes(width), a.alignment)
}

// Allocate returns a zeroed buffer of the given size.
//
// Returns ErrInvalidDimensions for non-positive sizes and ErrTooLarge
// when the required memory overflows or exceeds the allocator limit.
func (a *Allocator) Allocate(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if width > (math.MaxInt-a.alignment)/4 {
		return nil, fmt.Errorf("%w: width=%d", ErrTooLarge, width)
	}
	stride := a.Stride(width)
	if height > a.maxBytes/stride {
		return nil, fmt.Errorf("%w: %dx%d needs more than %d bytes", ErrTooLarge, width, height, a.maxBytes)
	}

	if a.pool != nil {
		if buf := a.pool.get(width, height, stride); buf != nil {
			return buf, nil
		}
	}
	return newBuffer(width, height, stride), nil
}

// Release marks buf released and hands it to the pool for reuse.
// Releasing nil or an already released buffer is a no-op.
func (a *Allocator) Release(buf *Buffer) {
	if buf == nil || buf.Released() {
		return
	}
	buf.release()
	if a.pool != nil {
		a.pool.put(buf)
	}
}

// alignUp rounds n up to a multiple of align.
func alignUp(n, align int) int {
	if align <= 1 {
		return n
	}
	return (n + align - 1) / align * align
}
