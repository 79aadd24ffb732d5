// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrInvalidColor is returned when a color string cannot be parsed.
var ErrInvalidColor = errors.New("pixeltex: invalid color")

// Color is an 8-bit-per-channel, non-premultiplied RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Red   = Color{R: 0xFF, A: 0xFF}
	Green = Color{G: 0xFF, A: 0xFF}
	Blue  = Color{B: 0xFF, A: 0xFF}
	Black = Color{A: 0xFF}
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xFF}
}

// ParseHex parses a color of the form "#RRGGBB" or "RRGGBB".
// Surrounding whitespace is ignored, hex digits may be either case,
// and alpha is always 255. Any other form, including the 3-digit and
// 8-digit variants, returns ErrInvalidColor.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var v [3]uint8
	for i := range v {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		v[i] = hi<<4 | lo
	}
	return RGB(v[0], v[1], v[2]), nil
}

// MustParseHex is like ParseHex but panics on error.
// Use only for hardcoded colors.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// hexDigit returns the value of a single hex digit.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Hex formats the color as "#RRGGBB", or "#RRGGBBAA" when alpha is not 255.
func (c Color) Hex() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// BGRA returns the 4 bytes of the color in BGRA32 memory order.
func (c Color) BGRA() [4]byte {
	return [4]byte{c.B, c.G, c.R, c.A}
}

// Packed returns the color as a 32-bit word B | G<<8 | R<<16 | A<<24,
// which is the BGRA32 pixel read as a little-endian uint32.
func (c Color) Packed() uint32 {
	return uint32(c.B) | uint32(c.G)<<8 | uint32(c.R)<<16 | uint32(c.A)<<24
}

// NRGBA converts the color to the standard library's color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}
