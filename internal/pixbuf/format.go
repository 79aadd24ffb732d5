// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import "github.com/gogpu/gputypes"

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatBGRA32 is 32-bit packed BGRA, one byte per channel in the
	// order blue, green, red, alpha. It is the only format a Buffer holds.
	FormatBGRA32 Format = iota + 1
)

// BytesPerPixel returns the number of bytes per pixel, or 0 for an
// unknown format.
func (f Format) BytesPerPixel() int {
	if f == FormatBGRA32 {
		return 4
	}
	return 0
}

// RowBytes returns the minimum number of bytes needed for a row of width
// pixels, excluding any alignment padding.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f == FormatBGRA32
}

// TextureFormat returns the GPU texture format matching f.
func (f Format) TextureFormat() gputypes.TextureFormat {
	if f == FormatBGRA32 {
		return gputypes.TextureFormatBGRA8Unorm
	}
	return gputypes.TextureFormatUndefined
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	if f == FormatBGRA32 {
		return "BGRA32"
	}
	return "Unknown"
}
