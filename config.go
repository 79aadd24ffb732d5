// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/pixeltex/internal/pixbuf"
)

// Defaults applied by DefaultConfig and by Plugin when a call omits them.
const (
	// ChannelName is the default method channel name.
	ChannelName = "texture_channel"

	// DefaultWidth is the texture width used when createTexture omits it.
	DefaultWidth = 300

	// DefaultHeight is the texture height used when createTexture omits it.
	DefaultHeight = 500

	// DefaultColorHex is the fill color used when createTexture omits it.
	DefaultColorHex = "#FF0000"
)

// ErrInvalidConfig is returned by Validate and LoadConfig.
var ErrInvalidConfig = errors.New("pixeltex: invalid config")

// Config holds the plugin defaults and buffer policy.
//
// Config is loaded from TOML with LoadConfig; keys match the toml tags.
type Config struct {
	// ChannelName is the method channel the plugin listens on.
	ChannelName string `toml:"channel_name"`

	// DefaultWidth and DefaultHeight size createTexture calls that omit them.
	DefaultWidth  int `toml:"default_width"`
	DefaultHeight int `toml:"default_height"`

	// DefaultColor fills createTexture calls that omit the color, or
	// pass one that does not parse.
	DefaultColor string `toml:"default_color"`

	// StrictColor makes createTexture reject unparseable colors with
	// INVALID_ARGUMENTS, like updateTextureColor does, instead of
	// falling back to DefaultColor.
	StrictColor bool `toml:"strict_color"`

	// RowAlignment is the byte alignment of buffer rows.
	RowAlignment int `toml:"row_alignment"`

	// MaxBufferBytes limits the backing memory of the pixel buffer.
	MaxBufferBytes int `toml:"max_buffer_bytes"`

	// LogLevel is one of "debug", "info", "warn", "error" or "off".
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration matching the stock plugin:
// 300x500 red textures on "texture_channel", 64-byte aligned rows.
func DefaultConfig() Config {
	return Config{
		ChannelName:    ChannelName,
		DefaultWidth:   DefaultWidth,
		DefaultHeight:  DefaultHeight,
		DefaultColor:   DefaultColorHex,
		RowAlignment:   pixbuf.DefaultRowAlignment,
		MaxBufferBytes: pixbuf.DefaultMaxBytes,
		LogLevel:       "off",
	}
}

// LoadConfig reads a TOML file over DefaultConfig and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("pixeltex: read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML data over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the config for values the plugin cannot use.
func (c Config) Validate() error {
	switch {
	case c.ChannelName == "":
		return fmt.Errorf("%w: empty channel_name", ErrInvalidConfig)
	case c.DefaultWidth <= 0 || c.DefaultHeight <= 0:
		return fmt.Errorf("%w: default size %dx%d", ErrInvalidConfig, c.DefaultWidth, c.DefaultHeight)
	case c.RowAlignment < 1:
		return fmt.Errorf("%w: row_alignment %d", ErrInvalidConfig, c.RowAlignment)
	}
	if _, err := ParseHex(c.DefaultColor); err != nil {
		return fmt.Errorf("%w: default_color: %w", ErrInvalidConfig, err)
	}
	if _, _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
// enabled is false for "off" and the empty string.
func (c Config) Level() (level slog.Level, enabled bool, err error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "off":
		return 0, false, nil
	case "debug":
		return slog.LevelDebug, true, nil
	case "info":
		return slog.LevelInfo, true, nil
	case "warn":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	default:
		return 0, false, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
}

// ManagerOptions returns the Manager options matching the buffer policy.
func (c Config) ManagerOptions() []ManagerOption {
	return []ManagerOption{
		WithRowAlignment(c.RowAlignment),
		WithMaxBufferBytes(c.MaxBufferBytes),
	}
}
