// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuregistry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/pixeltex"
	"github.com/gogpu/pixeltex/internal/pixbuf"
)

// Common errors returned by Registry operations.
var (
	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("gpuregistry: nil DeviceProvider")

	// ErrClosed is returned when operations are attempted on a closed registry.
	ErrClosed = errors.New("gpuregistry: registry is closed")

	// ErrNilSource is returned when registering a nil source.
	ErrNilSource = errors.New("gpuregistry: nil source")

	// ErrUnknownTexture is returned when rendering a handle that is not registered.
	ErrUnknownTexture = errors.New("gpuregistry: unknown texture")

	// ErrInvalidRenderer is returned when the draw context has no texture creator.
	ErrInvalidRenderer = errors.New("gpuregistry: draw context has no texture creator")
)

// TextureCreator creates GPU textures from tightly packed RGBA data.
// This matches the texture creator exposed by a gogpu draw context.
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// bgraTextureCreator is implemented by creators that accept BGRA data.
type bgraTextureCreator interface {
	NewTextureFromBGRA(width, height int, data []byte) (any, error)
}

// DrawContext is the per-frame drawing surface of the host.
type DrawContext interface {
	TextureCreator() TextureCreator
	DrawTexture(tex any, x, y float32) error
}

// textureUpdater is implemented by textures that accept new pixel data.
type textureUpdater interface {
	UpdateData(data []byte) error
}

// textureDestroyer is the interface for destroying textures.
type textureDestroyer interface {
	Destroy()
}

// slot is one registered source and its GPU texture.
type slot struct {
	source  pixeltex.PixelSource
	texture any
	bgra    bool // texture holds BGRA data
	width   int
	height  int
	dirty   bool
}

// Registry uploads registered pixel sources to GPU textures.
type Registry struct {
	mu       sync.Mutex
	provider gpucontext.DeviceProvider
	slots    map[int64]*slot
	retired  []any // textures awaiting deferred destruction
	nextID   int64
	closed   bool
}

// Ensure Registry implements pixeltex.TextureRegistry.
var _ pixeltex.TextureRegistry = (*Registry)(nil)

// New creates a Registry for the host behind provider.
// The provider should come from gogpu.App.GPUContextProvider().
func New(provider gpucontext.DeviceProvider) (*Registry, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Registry{
		provider: provider,
		slots:    make(map[int64]*slot),
	}, nil
}

// RegisterTexture implements pixeltex.TextureRegistry.
// The GPU texture is created on the next render.
func (r *Registry) RegisterTexture(src pixeltex.PixelSource) (int64, error) {
	if src == nil {
		return pixeltex.InvalidTextureID, ErrNilSource
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return pixeltex.InvalidTextureID, ErrClosed
	}
	id := r.nextID
	r.nextID++
	r.slots[id] = &slot{source: src, dirty: true}
	return id, nil
}

// TextureFrameAvailable implements pixeltex.TextureRegistry.
// The texture is re-uploaded on the next render.
func (r *Registry) TextureFrameAvailable(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.slots[id]; ok {
		s.dirty = true
	}
}

// UnregisterTexture implements pixeltex.TextureRegistry.
//
// The GPU texture may still be referenced by in-flight command buffers,
// so its destruction is deferred to the next upload or Close.
func (r *Registry) UnregisterTexture(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	if !ok {
		return
	}
	delete(r.slots, id)
	if s.texture != nil {
		r.retired = append(r.retired, s.texture)
	}
}

// Len returns the number of registered textures.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// IsDirty reports whether id has content not yet uploaded.
func (r *Registry) IsDirty(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[id]
	return ok && s.dirty
}

// Texture returns the GPU texture of id without uploading.
// Returns nil if the texture has not been created yet.
func (r *Registry) Texture(id int64) any {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.slots[id]; ok {
		return s.texture
	}
	return nil
}

// Flush uploads every dirty texture through creator and then destroys
// retired textures.
func (r *Registry) Flush(creator TextureCreator) error {
	if creator == nil {
		return ErrInvalidRenderer
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	var errs []error
	for id, s := range r.slots {
		if err := r.upload(creator, s); err != nil {
			errs = append(errs, fmt.Errorf("gpuregistry: texture %d: %w", id, err))
		}
	}
	r.destroyRetired()
	return errors.Join(errs...)
}

// RenderTo uploads id if needed and draws it at (0, 0).
func (r *Registry) RenderTo(dc DrawContext, id int64) error {
	return r.RenderToPosition(dc, id, 0, 0)
}

// RenderToPosition uploads id if needed and draws it at (x, y).
func (r *Registry) RenderToPosition(dc DrawContext, id int64, x, y float32) error {
	creator := dc.TextureCreator()
	if creator == nil {
		return ErrInvalidRenderer
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	s, ok := r.slots[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownTexture, id)
	}
	err := r.upload(creator, s)
	r.destroyRetired()
	tex := s.texture
	r.mu.Unlock()

	if err != nil {
		return err
	}
	if tex == nil {
		// Source has no frame yet; nothing to draw.
		return nil
	}
	return dc.DrawTexture(tex, x, y)
}

// Close destroys all GPU textures. After Close, the Registry should not
// be used. Close is idempotent.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	for id, s := range r.slots {
		if s.texture != nil {
			r.retired = append(r.retired, s.texture)
		}
		delete(r.slots, id)
	}
	r.destroyRetired()
	r.provider = nil
	return nil
}

// upload creates or updates the texture of s if it is dirty.
// Caller must hold mu.
func (r *Registry) upload(creator TextureCreator, s *slot) error {
	if !s.dirty && s.texture != nil {
		return nil
	}
	frame, ok := s.source.CopyPixelBuffer()
	if !ok {
		return nil
	}

	// Size changed: retire the old texture and create a new one.
	if s.texture != nil && (frame.Width != s.width || frame.Height != s.height) {
		r.retired = append(r.retired, s.texture)
		s.texture = nil
	}

	if s.texture == nil {
		tex, bgra, err := r.create(creator, frame)
		if err != nil {
			return err
		}
		s.texture = tex
		s.bgra = bgra
		s.width = frame.Width
		s.height = frame.Height
		s.dirty = false
		pixeltex.Logger().Debug("gpuregistry: texture created",
			"width", frame.Width, "height", frame.Height, "bgra", bgra)
		return nil
	}

	if updater, ok := s.texture.(textureUpdater); ok {
		if err := updater.UpdateData(pixels(frame, s.bgra)); err != nil {
			return fmt.Errorf("gpuregistry: texture update failed: %w", err)
		}
	}
	s.dirty = false
	return nil
}

// create makes a GPU texture for frame, uploading BGRA data directly
// when both the surface and the creator support it.
func (r *Registry) create(creator TextureCreator, frame pixeltex.Frame) (any, bool, error) {
	if bc, ok := creator.(bgraTextureCreator); ok && r.nativeBGRA() {
		tex, err := bc.NewTextureFromBGRA(frame.Width, frame.Height, frame.PackedBGRA())
		if err != nil {
			return nil, false, fmt.Errorf("gpuregistry: NewTextureFromBGRA failed: %w", err)
		}
		return tex, true, nil
	}
	tex, err := creator.NewTextureFromRGBA(frame.Width, frame.Height, frame.PackedRGBA())
	if err != nil {
		return nil, false, fmt.Errorf("gpuregistry: NewTextureFromRGBA failed: %w", err)
	}
	return tex, false, nil
}

// nativeBGRA reports whether the host surface stores BGRA pixels.
func (r *Registry) nativeBGRA() bool {
	return r.provider != nil && r.provider.SurfaceFormat() == pixbuf.FormatBGRA32.TextureFormat()
}

// SurfaceFormat returns the host surface format, or
// gputypes.TextureFormatUndefined after Close.
func (r *Registry) SurfaceFormat() gputypes.TextureFormat {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.provider == nil {
		return gputypes.TextureFormatUndefined
	}
	return r.provider.SurfaceFormat()
}

// destroyRetired destroys textures left by unregister and resize.
// Caller must hold mu.
func (r *Registry) destroyRetired() {
	for i, tex := range r.retired {
		if destroyer, ok := tex.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		r.retired[i] = nil
	}
	r.retired = r.retired[:0]
}

// pixels returns the tightly packed frame data in the texture's layout.
func pixels(frame pixeltex.Frame, bgra bool) []byte {
	if bgra {
		return frame.PackedBGRA()
	}
	return frame.PackedRGBA()
}
