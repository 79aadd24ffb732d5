// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuregistry implements pixeltex.TextureRegistry on top of a
// gogpu host, uploading registered pixel sources to GPU textures.
//
// The data flow is:
//
//	Manager (fill) -> PixelSource (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	reg, err := gpuregistry.New(app.GPUContextProvider())
//	if err != nil {
//	    return err
//	}
//	defer reg.Close()
//
//	mgr := pixeltex.NewManager(reg)
//	id, _ := mgr.Create(300, 500, pixeltex.Red)
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    reg.RenderTo(dc, id)
//	})
//
// # Uploads
//
// Textures are created lazily on the first render after registration,
// and re-uploaded on the first render after each frame notification.
// BGRA frames are uploaded as-is when the host surface is
// BGRA8Unorm and its texture creator accepts BGRA data; otherwise they
// are swizzled to RGBA.
//
// # Integration Without Circular Imports
//
// This package uses interfaces to avoid importing gogpu directly:
//
//   - gpucontext.DeviceProvider for the surface format
//   - Local interfaces for texture creation, update and drawing
//
// # Thread Safety
//
// Registry is safe for concurrent use. Render calls must come from the
// host's render thread, as with any gogpu drawing.
package gpuregistry
