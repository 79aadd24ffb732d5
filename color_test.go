// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{in: "#FF0000", want: Color{255, 0, 0, 255}},
		{in: "00FF00", want: Color{0, 255, 0, 255}},
		{in: "#0000ff", want: Color{0, 0, 255, 255}},
		{in: "  #12aBcD\n", want: Color{0x12, 0xAB, 0xCD, 255}},
		{in: "zzzzzz", wantErr: true},
		{in: "#FF00", wantErr: true},
		{in: "F00", wantErr: true},
		{in: "#FF000080", wantErr: true},
		{in: "##FF0000", wantErr: true},
		{in: "#FF 000", wantErr: true},
		{in: "", wantErr: true},
		{in: "#", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseHex(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMustParseHex(t *testing.T) {
	if MustParseHex("#FF0000") != Red {
		t.Error("MustParseHex(#FF0000) != Red")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex(bad) did not panic")
		}
	}()
	MustParseHex("bad")
}

func TestColor_Layout(t *testing.T) {
	c := Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}

	if got := c.BGRA(); got != [4]byte{0x33, 0x22, 0x11, 0x44} {
		t.Errorf("BGRA() = %v", got)
	}
	if got := c.Packed(); got != 0x44112233 {
		t.Errorf("Packed() = %#x, want 0x44112233", got)
	}
	if got := Blue.BGRA(); got != [4]byte{0xFF, 0, 0, 0xFF} {
		t.Errorf("Blue.BGRA() = %v", got)
	}
}

func TestColor_Hex(t *testing.T) {
	if got := Red.Hex(); got != "#FF0000" {
		t.Errorf("Red.Hex() = %q", got)
	}
	if got := (Color{1, 2, 3, 4}).String(); got != "#01020304" {
		t.Errorf("String() = %q", got)
	}
	c, err := ParseHex(RGB(0xAB, 0xCD, 0xEF).Hex())
	if err != nil || c != RGB(0xAB, 0xCD, 0xEF) {
		t.Errorf("Hex() does not parse back: %v, %v", c, err)
	}
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := Red.RGBA()
	if r != 0xFFFF || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("Red.RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}
