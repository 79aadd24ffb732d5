// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixbuf implements the row-major BGRA32 pixel buffers backing a
// texture, with stride-aligned rows and an explicit lock bracket around
// direct memory access.
package pixbuf

import (
	"errors"
	"sync"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("pixbuf: stride too small for width")

	// ErrTooLarge is returned when the backing memory cannot be obtained.
	ErrTooLarge = errors.New("pixbuf: buffer exceeds allocation limit")

	// ErrReleased is returned when a released buffer is accessed.
	ErrReleased = errors.New("pixbuf: buffer released")
)

// Buffer is a contiguous row-major BGRA32 pixel buffer.
//
// Rows start every Stride bytes; Stride may exceed Width*4 by alignment
// padding, so readers and writers must index rows through Row or
// Stride, never by assuming Width*4.
//
// Direct access to the pixel memory must be bracketed by Lock and
// Unlock. Fill and CopyTo take the lock themselves.
type Buffer struct {
	mu sync.Mutex

	data     []byte
	width    int
	height   int
	stride   int
	format   Format
	released bool
}

// newBuffer creates a buffer with the given geometry. Callers validate
// the arguments.
func newBuffer(width, height, stride int) *Buffer {
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: FormatBGRA32,
	}
}

// New creates a buffer with tightly packed rows (stride = width*4).
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return newBuffer(width, height, FormatBGRA32.RowBytes(width)), nil
}

// NewWithStride creates a buffer with a custom stride for alignment.
// Stride must be at least width*4.
func NewWithStride(width, height, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if stride < FormatBGRA32.RowBytes(width) {
		return nil, ErrInvalidStride
	}
	return newBuffer(width, height, stride), nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// BytesPerRow returns the number of bytes per row, including padding.
func (b *Buffer) BytesPerRow() int {
	return b.stride
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Len returns the size of the backing memory in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Lock acquires exclusive access to the pixel memory.
func (b *Buffer) Lock() {
	b.mu.Lock()
}

// Unlock releases the lock acquired by Lock.
func (b *Buffer) Unlock() {
	b.mu.Unlock()
}

// Row returns the pixel bytes of row y, exactly Width*4 bytes long.
// Padding beyond the last pixel is not included.
// Returns nil if y is out of bounds or the buffer was released.
// The caller must hold the lock.
func (b *Buffer) Row(y int) []byte {
	if b.released || y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// Data returns the whole backing memory, padding included.
// The caller must hold the lock.
func (b *Buffer) Data() []byte {
	if b.released {
		return nil
	}
	return b.data
}

// PixelAt returns the 4 bytes of pixel (x, y) in B, G, R, A order.
// Returns ok=false if the coordinates are out of bounds.
// The caller must hold the lock.
func (b *Buffer) PixelAt(x, y int) (px [4]byte, ok bool) {
	if x < 0 || x >= b.width {
		return px, false
	}
	row := b.Row(y)
	if row == nil {
		return px, false
	}
	copy(px[:], row[x*4:x*4+4])
	return px, true
}

// Fill writes pixel to every pixel of every row. Row padding is left
// untouched. Fill holds the lock for the whole write.
func (b *Buffer) Fill(pixel [4]byte) error {
	b.Lock()
	defer b.Unlock()

	if b.released {
		return ErrReleased
	}
	for y := range b.height {
		fillPattern(b.Row(y), pixel)
	}
	return nil
}

// fillPattern repeats the 4-byte pattern over row, doubling the written
// prefix on each pass. len(row) must be a multiple of 4.
func fillPattern(row []byte, pixel [4]byte) {
	if len(row) == 0 {
		return
	}
	n := copy(row, pixel[:])
	for n < len(row) {
		n += copy(row[n:], row[:n])
	}
}

// CopyTo copies the buffer memory, padding included, into dst and
// returns the number of bytes copied. CopyTo holds the lock while
// reading.
func (b *Buffer) CopyTo(dst []byte) (int, error) {
	b.Lock()
	defer b.Unlock()

	if b.released {
		return 0, ErrReleased
	}
	return copy(dst, b.data), nil
}

// Released reports whether the buffer has been released.
func (b *Buffer) Released() bool {
	b.Lock()
	defer b.Unlock()
	return b.released
}

// reset zeroes the memory and marks the buffer usable again.
func (b *Buffer) reset() {
	b.Lock()
	clear(b.data)
	b.released = false
	b.Unlock()
}

// release marks the buffer released. Further reads and fills fail.
func (b *Buffer) release() {
	b.Lock()
	b.released = true
	b.Unlock()
}
