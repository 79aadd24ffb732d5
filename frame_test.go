// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"testing"

	"github.com/gogpu/pixeltex/internal/pixbuf"
)

func paddedFrame() Frame {
	// 2x2 frame with 4 bytes of padding per row.
	return Frame{
		Width:  2,
		Height: 2,
		Stride: 12,
		Pix: []byte{
			1, 2, 3, 4, 5, 6, 7, 8, 0xEE, 0xEE, 0xEE, 0xEE,
			9, 10, 11, 12, 13, 14, 15, 16, 0xEE, 0xEE, 0xEE, 0xEE,
		},
	}
}

func TestFrame_PixelAt(t *testing.T) {
	f := paddedFrame()

	px, ok := f.PixelAt(1, 1)
	if !ok || px != [4]byte{13, 14, 15, 16} {
		t.Errorf("PixelAt(1, 1) = (%v, %v)", px, ok)
	}
	if _, ok := f.PixelAt(2, 0); ok {
		t.Error("PixelAt(2, 0) should be out of bounds")
	}
	c, ok := f.Color(0, 0)
	if !ok || c != (Color{R: 3, G: 2, B: 1, A: 4}) {
		t.Errorf("Color(0, 0) = (%+v, %v)", c, ok)
	}
	if f.Format() != pixbuf.FormatBGRA32 {
		t.Error("Format() should be BGRA32")
	}
}

func TestFrame_Packed(t *testing.T) {
	f := paddedFrame()

	wantBGRA := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if got := f.PackedBGRA(); string(got) != string(wantBGRA) {
		t.Errorf("PackedBGRA() = %v", got)
	}

	wantRGBA := []byte{3, 2, 1, 4, 7, 6, 5, 8, 11, 10, 9, 12, 15, 14, 13, 16}
	if got := f.PackedRGBA(); string(got) != string(wantRGBA) {
		t.Errorf("PackedRGBA() = %v", got)
	}

	tight := Frame{Width: 1, Height: 1, Stride: 4, Pix: []byte{1, 2, 3, 4}}
	got := tight.PackedBGRA()
	got[0] = 99
	if tight.Pix[0] != 1 {
		t.Error("PackedBGRA() must copy, not alias")
	}
}

func TestFrame_ToImage(t *testing.T) {
	img := paddedFrame().ToImage()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	c := img.NRGBAAt(1, 0)
	if c.R != 7 || c.G != 6 || c.B != 5 || c.A != 8 {
		t.Errorf("NRGBAAt(1, 0) = %+v", c)
	}
}
