// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/pixeltex/internal/pixbuf"
)

// Common errors returned by Manager operations.
var (
	// ErrAllocation is returned when the pixel buffer cannot be allocated,
	// including for non-positive dimensions.
	ErrAllocation = errors.New("pixeltex: pixel buffer allocation failed")

	// ErrNoRegistry is returned by Create when the manager has no registry.
	ErrNoRegistry = errors.New("pixeltex: texture registry not available")

	// ErrRegistration is returned when the registry rejects the texture.
	ErrRegistration = errors.New("pixeltex: texture registration failed")
)

// Manager owns at most one solid-color texture: its pixel buffer, the
// registry handle and the current color.
//
// A buffer exists exactly when the handle is valid; both are created by
// Create and destroyed together by Dispose or the next Create.
//
// Manager is safe for concurrent use.
type Manager struct {
	mu sync.Mutex

	registry TextureRegistry
	alloc    *pixbuf.Allocator

	tex   *texture
	buf   *pixbuf.Buffer
	id    int64
	color Color
}

// ManagerOption configures a Manager during creation.
type ManagerOption func(*managerOptions)

// managerOptions holds optional configuration for Manager creation.
type managerOptions struct {
	rowAlignment int
	maxBytes     int
	poolSize     int
}

func defaultManagerOptions() managerOptions {
	return managerOptions{
		rowAlignment: pixbuf.DefaultRowAlignment,
		maxBytes:     pixbuf.DefaultMaxBytes,
		poolSize:     2,
	}
}

// WithRowAlignment sets the byte alignment of buffer rows.
// Use 1 for tightly packed rows (BytesPerRow = Width*4).
func WithRowAlignment(n int) ManagerOption {
	return func(o *managerOptions) {
		o.rowAlignment = n
	}
}

// WithMaxBufferBytes limits the backing memory of the pixel buffer.
// Create fails with ErrAllocation for larger textures. Values below 1
// remove the limit.
func WithMaxBufferBytes(n int) ManagerOption {
	return func(o *managerOptions) {
		o.maxBytes = n
	}
}

// WithBufferReuse sets how many released buffers of one size are kept
// for reuse. Zero disables reuse.
func WithBufferReuse(n int) ManagerOption {
	return func(o *managerOptions) {
		o.poolSize = n
	}
}

// NewManager creates a Manager that registers its texture with reg.
//
// The manager starts with no texture, InvalidTextureID and Red as the
// current color.
func NewManager(reg TextureRegistry, opts ...ManagerOption) *Manager {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var pool *pixbuf.Pool
	if o.poolSize > 0 {
		pool = pixbuf.NewPool(o.poolSize)
	}

	return &Manager{
		registry: reg,
		alloc: pixbuf.NewAllocator(
			pixbuf.WithRowAlignment(o.rowAlignment),
			pixbuf.WithMaxBytes(o.maxBytes),
			pixbuf.WithPool(pool),
		),
		id:    InvalidTextureID,
		color: Red,
	}
}

// Create replaces any current texture with a new width x height buffer
// filled with c, registers it and returns its handle.
//
// On failure Create returns InvalidTextureID and an error wrapping
// ErrAllocation, ErrNoRegistry or ErrRegistration. The previous texture
// is disposed either way; no partial state is kept.
func (m *Manager) Create(width, height int, c Color) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.disposeLocked()
	m.color = c

	buf, err := m.alloc.Allocate(width, height)
	if err != nil {
		Logger().Warn("pixeltex: failed to create pixel buffer",
			"width", width, "height", height, "err", err)
		return InvalidTextureID, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	if err := buf.Fill(c.BGRA()); err != nil {
		m.alloc.Release(buf)
		return InvalidTextureID, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	Logger().Debug("pixeltex: pixel buffer allocated",
		"width", width, "height", height, "bytesPerRow", buf.BytesPerRow())

	if m.registry == nil {
		m.alloc.Release(buf)
		Logger().Warn("pixeltex: texture registry not available")
		return InvalidTextureID, ErrNoRegistry
	}

	tex := newTexture(buf)
	id, err := m.registry.RegisterTexture(tex)
	if err == nil && id < 0 {
		err = fmt.Errorf("invalid handle %d", id)
	}
	if err != nil {
		tex.detach()
		m.alloc.Release(buf)
		Logger().Warn("pixeltex: texture registration failed", "err", err)
		return InvalidTextureID, fmt.Errorf("%w: %w", ErrRegistration, err)
	}

	m.tex = tex
	m.buf = buf
	m.id = id
	Logger().Info("pixeltex: texture created",
		"id", id, "width", width, "height", height, "color", c)
	return id, nil
}

// UpdateColor refills the current buffer with c and notifies the
// registry that a new frame is available. The buffer keeps its size.
//
// Without a texture UpdateColor only records c as the current color
// and makes no registry calls.
func (m *Manager) UpdateColor(c Color) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.color = c
	if m.buf == nil {
		return
	}
	if err := m.buf.Fill(c.BGRA()); err != nil {
		Logger().Warn("pixeltex: failed to fill pixel buffer", "id", m.id, "err", err)
		return
	}
	if m.registry != nil && m.id >= 0 {
		m.registry.TextureFrameAvailable(m.id)
	}
	Logger().Debug("pixeltex: texture color updated", "id", m.id, "color", c)
}

// Dispose unregisters the current texture and releases its buffer.
// Dispose is idempotent.
func (m *Manager) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disposeLocked()
}

// disposeLocked tears down the current texture. Caller must hold mu.
func (m *Manager) disposeLocked() {
	id := m.id
	if m.id >= 0 {
		if m.registry != nil {
			m.registry.UnregisterTexture(m.id)
		}
		m.id = InvalidTextureID
	}
	if m.tex != nil {
		m.tex.detach()
		m.tex = nil
	}
	if m.buf != nil {
		m.alloc.Release(m.buf)
		m.buf = nil
		Logger().Info("pixeltex: texture disposed", "id", id)
	}
}

// TextureID returns the current handle, or InvalidTextureID.
func (m *Manager) TextureID() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.id
}

// Active reports whether a texture currently exists.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf != nil
}

// Color returns the most recently requested color.
func (m *Manager) Color() Color {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.color
}

// Geometry returns the size and row stride of the current buffer.
// Returns ok=false when there is no texture.
func (m *Manager) Geometry() (width, height, bytesPerRow int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.buf == nil {
		return 0, 0, 0, false
	}
	return m.buf.Width(), m.buf.Height(), m.buf.BytesPerRow(), true
}

// Snapshot returns a copy of the current pixel memory.
// Returns ok=false when there is no texture.
func (m *Manager) Snapshot() (Frame, bool) {
	m.mu.Lock()
	tex := m.tex
	m.mu.Unlock()

	if tex == nil {
		return Frame{}, false
	}
	return tex.CopyPixelBuffer()
}
