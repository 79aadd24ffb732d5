// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"image"

	"github.com/gogpu/pixeltex/internal/pixbuf"
)

// Frame is a copy of a texture's pixel memory at one point in time.
//
// Pix holds Height rows of Stride bytes each in BGRA32 order. Row padding
// beyond Width*4 is copied as-is.
type Frame struct {
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// Format returns the pixel format of the frame, always BGRA32.
func (f Frame) Format() pixbuf.Format {
	return pixbuf.FormatBGRA32
}

// PixelAt returns the BGRA bytes of pixel (x, y).
// Returns ok=false if the coordinates are out of bounds.
func (f Frame) PixelAt(x, y int) (px [4]byte, ok bool) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return px, false
	}
	i := y*f.Stride + x*4
	if i+4 > len(f.Pix) {
		return px, false
	}
	copy(px[:], f.Pix[i:i+4])
	return px, true
}

// Color returns the color of pixel (x, y).
func (f Frame) Color(x, y int) (Color, bool) {
	px, ok := f.PixelAt(x, y)
	if !ok {
		return Color{}, false
	}
	return Color{R: px[2], G: px[1], B: px[0], A: px[3]}, true
}

// PackedRGBA returns the frame converted to tightly packed RGBA rows
// (stride Width*4), the layout GPU texture creators accept.
func (f Frame) PackedRGBA() []byte {
	out := make([]byte, f.Width*f.Height*4)
	for y := range f.Height {
		src := f.Pix[y*f.Stride : y*f.Stride+f.Width*4]
		dst := out[y*f.Width*4 : (y+1)*f.Width*4]
		for i := 0; i < len(src); i += 4 {
			dst[i+0] = src[i+2]
			dst[i+1] = src[i+1]
			dst[i+2] = src[i+0]
			dst[i+3] = src[i+3]
		}
	}
	return out
}

// PackedBGRA returns the frame with padding removed (stride Width*4).
func (f Frame) PackedBGRA() []byte {
	if f.Stride == f.Width*4 {
		out := make([]byte, len(f.Pix))
		copy(out, f.Pix)
		return out
	}
	out := make([]byte, f.Width*f.Height*4)
	for y := range f.Height {
		copy(out[y*f.Width*4:(y+1)*f.Width*4], f.Pix[y*f.Stride:y*f.Stride+f.Width*4])
	}
	return out
}

// ToImage converts the frame to an image.NRGBA.
func (f Frame) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	copy(img.Pix, f.PackedRGBA())
	return img
}
