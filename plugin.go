// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"context"

	"github.com/gogpu/pixeltex/channel"
)

// Method names understood by Plugin.
const (
	MethodCreateTexture      = "createTexture"
	MethodUpdateTextureColor = "updateTextureColor"
	MethodDisposeTexture     = "disposeTexture"
)

// Argument keys understood by Plugin.
const (
	ArgWidth  = "width"
	ArgHeight = "height"
	ArgColor  = "color"
)

// CodeInvalidArguments is the error code for a missing or malformed color.
const CodeInvalidArguments = "INVALID_ARGUMENTS"

// messageColorRequired is the message sent with CodeInvalidArguments.
const messageColorRequired = "Color parameter is required"

// Plugin routes channel calls to a Manager.
//
// Plugin keeps no texture state of its own; it decodes and defaults
// arguments and answers with handles, nil or structured errors.
type Plugin struct {
	manager *Manager
	cfg     Config

	defaultColor Color
}

// Ensure Plugin implements channel.Handler.
var _ channel.Handler = (*Plugin)(nil)

// NewPlugin creates a Plugin driving m with the defaults in cfg.
// An unparseable cfg.DefaultColor falls back to Red.
func NewPlugin(m *Manager, cfg Config) *Plugin {
	def, err := ParseHex(cfg.DefaultColor)
	if err != nil {
		def = Red
	}
	if cfg.DefaultWidth <= 0 {
		cfg.DefaultWidth = DefaultWidth
	}
	if cfg.DefaultHeight <= 0 {
		cfg.DefaultHeight = DefaultHeight
	}
	return &Plugin{manager: m, cfg: cfg, defaultColor: def}
}

// Manager returns the manager the plugin drives.
func (p *Plugin) Manager() *Manager {
	return p.manager
}

// HandleMethodCall implements channel.Handler.
func (p *Plugin) HandleMethodCall(_ context.Context, call *channel.MethodCall) (any, error) {
	switch call.Method {
	case MethodCreateTexture:
		return p.createTexture(call)
	case MethodUpdateTextureColor:
		return p.updateTextureColor(call)
	case MethodDisposeTexture:
		p.manager.Dispose()
		return nil, nil
	default:
		return nil, channel.ErrNotImplemented
	}
}

// createTexture answers the texture handle. Allocation and registration
// failures are logged and answered with InvalidTextureID, not an error.
func (p *Plugin) createTexture(call *channel.MethodCall) (any, error) {
	width, ok := call.Int(ArgWidth)
	if !ok {
		width = p.cfg.DefaultWidth
	}
	height, ok := call.Int(ArgHeight)
	if !ok {
		height = p.cfg.DefaultHeight
	}

	c := p.defaultColor
	if s, ok := call.String(ArgColor); ok {
		parsed, err := ParseHex(s)
		switch {
		case err == nil:
			c = parsed
		case p.cfg.StrictColor:
			return nil, channel.NewError(CodeInvalidArguments, messageColorRequired)
		default:
			Logger().Warn("pixeltex: invalid color, using default",
				"color", s, "default", p.defaultColor)
		}
	}

	id, err := p.manager.Create(width, height, c)
	if err != nil {
		Logger().Warn("pixeltex: createTexture failed", "err", err)
		return InvalidTextureID, nil
	}
	return id, nil
}

func (p *Plugin) updateTextureColor(call *channel.MethodCall) (any, error) {
	s, ok := call.String(ArgColor)
	if !ok {
		return nil, channel.NewError(CodeInvalidArguments, messageColorRequired)
	}
	c, err := ParseHex(s)
	if err != nil {
		return nil, channel.NewError(CodeInvalidArguments, messageColorRequired)
	}
	p.manager.UpdateColor(c)
	return nil, nil
}
