// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.ChannelName != "texture_channel" || cfg.DefaultWidth != 300 || cfg.DefaultHeight != 500 {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
	if cfg.StrictColor {
		t.Error("StrictColor should default to false")
	}
	if _, enabled, _ := cfg.Level(); enabled {
		t.Error("logging should default to off")
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
channel_name = "swatch"
default_width = 16
default_color = "#00FF00"
strict_color = true
row_alignment = 16
log_level = "debug"
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.ChannelName != "swatch" || cfg.DefaultWidth != 16 || !cfg.StrictColor || cfg.RowAlignment != 16 {
		t.Errorf("ParseConfig() = %+v", cfg)
	}
	if cfg.DefaultHeight != DefaultHeight {
		t.Errorf("DefaultHeight = %d, want default %d", cfg.DefaultHeight, DefaultHeight)
	}
	level, enabled, _ := cfg.Level()
	if !enabled || level != slog.LevelDebug {
		t.Errorf("Level() = (%v, %v), want (DEBUG, true)", level, enabled)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "syntax", data: `default_width = `},
		{name: "wrong type", data: `default_width = "wide"`},
		{name: "zero width", data: `default_width = 0`},
		{name: "bad color", data: `default_color = "zzzzzz"`},
		{name: "empty channel", data: `channel_name = ""`},
		{name: "bad alignment", data: `row_alignment = 0`},
		{name: "bad level", data: `log_level = "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.data)); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseConfig(%q) error = %v, want ErrInvalidConfig", tt.data, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixeltex.toml")
	if err := os.WriteFile(path, []byte("default_height = 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DefaultHeight != 20 {
		t.Errorf("DefaultHeight = %d, want 20", cfg.DefaultHeight)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) error = %v, want os.ErrNotExist", err)
	}
}
