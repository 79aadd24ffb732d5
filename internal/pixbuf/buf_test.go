// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		wantErr    error
		wantStride int
	}{
		{name: "valid", width: 3, height: 2, wantStride: 12},
		{name: "single pixel", width: 1, height: 1, wantStride: 4},
		{name: "zero width", width: 0, height: 2, wantErr: ErrInvalidDimensions},
		{name: "negative height", width: 2, height: -1, wantErr: ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := New(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if buf.BytesPerRow() != tt.wantStride {
				t.Errorf("BytesPerRow() = %d, want %d", buf.BytesPerRow(), tt.wantStride)
			}
			if buf.Len() != tt.wantStride*tt.height {
				t.Errorf("Len() = %d, want %d", buf.Len(), tt.wantStride*tt.height)
			}
			if buf.Format() != FormatBGRA32 {
				t.Errorf("Format() = %v, want BGRA32", buf.Format())
			}
		})
	}
}

func TestNewWithStride(t *testing.T) {
	if _, err := NewWithStride(4, 4, 15); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("NewWithStride(stride=15) error = %v, want ErrInvalidStride", err)
	}
	buf, err := NewWithStride(4, 4, 32)
	if err != nil {
		t.Fatalf("NewWithStride() error = %v", err)
	}
	if buf.BytesPerRow() != 32 {
		t.Errorf("BytesPerRow() = %d, want 32", buf.BytesPerRow())
	}
}

func TestFill_RespectsStride(t *testing.T) {
	const width, height, stride = 3, 4, 20
	buf, err := NewWithStride(width, height, stride)
	if err != nil {
		t.Fatal(err)
	}

	// Mark the padding so we can see it survives the fill.
	data := buf.Data()
	for y := range height {
		for i := width * 4; i < stride; i++ {
			data[y*stride+i] = 0xAB
		}
	}

	pixel := [4]byte{0x11, 0x22, 0x33, 0x44}
	if err := buf.Fill(pixel); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}

	for y := range height {
		for x := range width {
			px, ok := buf.PixelAt(x, y)
			if !ok {
				t.Fatalf("PixelAt(%d, %d) out of bounds", x, y)
			}
			if px != pixel {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, px, pixel)
			}
		}
		for i := width * 4; i < stride; i++ {
			if data[y*stride+i] != 0xAB {
				t.Fatalf("padding byte %d of row %d = %#x, want 0xab", i, y, data[y*stride+i])
			}
		}
	}
}

func TestFillPattern(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 64, 301} {
		row := make([]byte, n*4)
		fillPattern(row, [4]byte{1, 2, 3, 4})
		for i := 0; i < len(row); i += 4 {
			if row[i] != 1 || row[i+1] != 2 || row[i+2] != 3 || row[i+3] != 4 {
				t.Fatalf("n=%d: pixel %d = %v", n, i/4, row[i:i+4])
			}
		}
	}
}

func TestRow(t *testing.T) {
	buf, _ := NewWithStride(2, 3, 16)

	if got := len(buf.Row(0)); got != 8 {
		t.Errorf("len(Row(0)) = %d, want 8", got)
	}
	if buf.Row(-1) != nil || buf.Row(3) != nil {
		t.Error("Row() out of bounds should return nil")
	}
	if _, ok := buf.PixelAt(2, 0); ok {
		t.Error("PixelAt(2, 0) should be out of bounds")
	}
}

func TestCopyTo(t *testing.T) {
	buf, _ := New(2, 2)
	_ = buf.Fill([4]byte{9, 8, 7, 6})

	dst := make([]byte, buf.Len())
	n, err := buf.CopyTo(dst)
	if err != nil {
		t.Fatalf("CopyTo() error = %v", err)
	}
	if n != 16 {
		t.Errorf("CopyTo() = %d, want 16", n)
	}
	if dst[4] != 9 || dst[7] != 6 {
		t.Errorf("copied pixel = %v, want [9 8 7 6]", dst[4:8])
	}
}

func TestReleasedBuffer(t *testing.T) {
	buf, _ := New(2, 2)
	buf.release()

	if !buf.Released() {
		t.Fatal("Released() = false after release")
	}
	if err := buf.Fill([4]byte{}); !errors.Is(err, ErrReleased) {
		t.Errorf("Fill() error = %v, want ErrReleased", err)
	}
	if _, err := buf.CopyTo(make([]byte, 16)); !errors.Is(err, ErrReleased) {
		t.Errorf("CopyTo() error = %v, want ErrReleased", err)
	}
	if buf.Row(0) != nil || buf.Data() != nil {
		t.Error("released buffer should expose no memory")
	}
}

func TestFormat(t *testing.T) {
	if FormatBGRA32.BytesPerPixel() != 4 {
		t.Errorf("BytesPerPixel() = %d, want 4", FormatBGRA32.BytesPerPixel())
	}
	if FormatBGRA32.TextureFormat() != gputypes.TextureFormatBGRA8Unorm {
		t.Error("TextureFormat() should map to BGRA8Unorm")
	}
	var unknown Format
	if unknown.IsValid() || unknown.BytesPerPixel() != 0 {
		t.Error("zero Format should be invalid")
	}
	if unknown.TextureFormat() != gputypes.TextureFormatUndefined {
		t.Error("zero Format should map to TextureFormatUndefined")
	}
	if FormatBGRA32.String() != "BGRA32" {
		t.Errorf("String() = %q, want BGRA32", FormatBGRA32.String())
	}
}
