// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixeltex provides a solid-color BGRA pixel-buffer texture for a
// host UI framework, driven over a method-call channel.
//
// # Overview
//
// The host owns a texture registry that maps integer handles to pixel
// sources. pixeltex allocates one stride-aligned BGRA32 buffer, fills it
// with a color, registers it, and keeps it current as the UI asks for a
// new color. The data flow is:
//
//	channel call -> Plugin -> Manager -> pixel buffer -> TextureRegistry
//
// # Quick Start
//
//	reg := registry.NewMemory()
//	mgr := pixeltex.NewManager(reg)
//	plugin := pixeltex.NewPlugin(mgr, pixeltex.DefaultConfig())
//
//	ch := channel.New(pixeltex.ChannelName)
//	ch.SetMethodCallHandler(plugin)
//
//	env := ch.Invoke(ctx, &channel.MethodCall{
//	    Method:    pixeltex.MethodCreateTexture,
//	    Arguments: map[string]any{"width": 2, "height": 2, "color": "#0000FF"},
//	})
//
// # Methods
//
//   - createTexture {width?, height?, color?} returns the texture handle,
//     or -1 when the buffer cannot be allocated or registered
//   - updateTextureColor {color} returns nil, or INVALID_ARGUMENTS
//   - disposeTexture returns nil
//
// Any other method answers not implemented.
//
// # Pixel Layout
//
// Buffers are row-major BGRA32: byte 0 blue, 1 green, 2 red, 3 alpha.
// Rows are BytesPerRow apart, which may exceed Width*4 by alignment
// padding. Consumers read frames through [PixelSource.CopyPixelBuffer].
//
// # Thread Safety
//
// Manager and Plugin are safe for concurrent use. Hosts typically deliver
// calls serially on the UI thread; the locks only matter when they don't.
//
// # Logging
//
// pixeltex is silent by default. See [SetLogger].
package pixeltex
