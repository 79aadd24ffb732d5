// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package registry provides an in-memory texture registry for headless
// hosts, tests and the texdemo command.
package registry

import (
	"errors"
	"sort"
	"sync"

	"github.com/gogpu/pixeltex"
)

// ErrNilSource is returned when registering a nil source.
var ErrNilSource = errors.New("registry: nil source")

// entry is one registered texture.
type entry struct {
	source pixeltex.PixelSource
	frames int
}

// Memory is a texture registry that keeps sources in a map.
//
// Handles are assigned from 0 upward and never reused. Memory does not
// render; it only records sources and frame notifications.
//
// Memory is safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	entries map[int64]*entry
	nextID  int64
}

// Ensure Memory implements pixeltex.TextureRegistry.
var _ pixeltex.TextureRegistry = (*Memory)(nil)

// NewMemory creates an empty registry.
func NewMemory() *Memory {
	return &Memory{entries: make(map[int64]*entry)}
}

// RegisterTexture implements pixeltex.TextureRegistry.
func (m *Memory) RegisterTexture(src pixeltex.PixelSource) (int64, error) {
	if src == nil {
		return pixeltex.InvalidTextureID, ErrNilSource
	}

	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.entries[id] = &entry{source: src}
	m.mu.Unlock()

	pixeltex.Logger().Debug("registry: texture registered", "id", id)
	return id, nil
}

// TextureFrameAvailable implements pixeltex.TextureRegistry.
// Notifications for unknown handles are ignored.
func (m *Memory) TextureFrameAvailable(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[id]; ok {
		e.frames++
	}
}

// UnregisterTexture implements pixeltex.TextureRegistry.
// Unregistering an unknown handle is a no-op.
func (m *Memory) UnregisterTexture(id int64) {
	m.mu.Lock()
	_, ok := m.entries[id]
	delete(m.entries, id)
	m.mu.Unlock()

	if ok {
		pixeltex.Logger().Debug("registry: texture unregistered", "id", id)
	}
}

// Source returns the source registered under id.
func (m *Memory) Source(id int64) (pixeltex.PixelSource, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[id]
	if !ok {
		return nil, false
	}
	return e.source, true
}

// Frames returns how many frame notifications id has received.
func (m *Memory) Frames(id int64) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.entries[id]; ok {
		return e.frames
	}
	return 0
}

// Frame copies the current pixels of the texture registered under id.
func (m *Memory) Frame(id int64) (pixeltex.Frame, bool) {
	src, ok := m.Source(id)
	if !ok {
		return pixeltex.Frame{}, false
	}
	return src.CopyPixelBuffer()
}

// List returns the registered handles in ascending order.
func (m *Memory) List() []int64 {
	m.mu.RLock()
	ids := make([]int64, 0, len(m.entries))
	for id := range m.entries {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of registered textures.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
