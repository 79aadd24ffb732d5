// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixeltex

import (
	"sync"

	"github.com/gogpu/pixeltex/internal/pixbuf"
)

// InvalidTextureID is the handle value meaning "no active texture".
const InvalidTextureID int64 = -1

// PixelSource is the object a texture registry renders from.
type PixelSource interface {
	// CopyPixelBuffer returns a copy of the current pixel memory.
	// Returns ok=false when the source has no buffer.
	CopyPixelBuffer() (Frame, bool)
}

// TextureRegistry is the host service that maps handles to pixel sources.
//
// Implementations are provided by the host. See the registry and
// integration/gpuregistry packages for two of them.
type TextureRegistry interface {
	// RegisterTexture registers src and returns its non-negative handle.
	RegisterTexture(src PixelSource) (int64, error)

	// TextureFrameAvailable tells the registry that id has new content.
	TextureFrameAvailable(id int64)

	// UnregisterTexture removes id from the registry.
	UnregisterTexture(id int64)
}

// texture is the PixelSource handed to the registry. It outlives the
// buffer only as a husk: once detached it reports no frame.
type texture struct {
	mu  sync.RWMutex
	buf *pixbuf.Buffer
}

func newTexture(buf *pixbuf.Buffer) *texture {
	return &texture{buf: buf}
}

// CopyPixelBuffer implements PixelSource.
func (t *texture) CopyPixelBuffer() (Frame, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.buf == nil {
		return Frame{}, false
	}
	f := Frame{
		Width:  t.buf.Width(),
		Height: t.buf.Height(),
		Stride: t.buf.BytesPerRow(),
		Pix:    make([]byte, t.buf.Len()),
	}
	if _, err := t.buf.CopyTo(f.Pix); err != nil {
		return Frame{}, false
	}
	return f, true
}

// detach drops the buffer. The owner releases it.
func (t *texture) detach() {
	t.mu.Lock()
	t.buf = nil
	t.mu.Unlock()
}
