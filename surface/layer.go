// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"sync"

	"github.com/gogpu/readback"
)

// Layer is a compositing layer implementing readback.TextureLayer. Its
// content is whatever texture is currently bound, not a queue of
// frames: binding replaces the previous texture immediately.
//
// Layer is safe for concurrent use.
type Layer struct {
	mu        sync.Mutex
	tex       readback.Texture
	destroyed bool
}

// NewLayer creates a layer with no texture bound.
func NewLayer() *Layer {
	return &Layer{}
}

// Bind sets the texture the layer composites. Binding nil is equivalent
// to Unbind. Binding on a destroyed layer is ignored.
func (l *Layer) Bind(t readback.Texture) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.destroyed {
		return
	}
	l.tex = t
}

// Unbind removes the current texture, leaving the layer empty.
func (l *Layer) Unbind() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tex = nil
}

// Destroy permanently invalidates the layer. Subsequent BoundTexture
// calls fail with SourceInvalid. Destroy is idempotent.
func (l *Layer) Destroy() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.destroyed = true
	l.tex = nil
}

// BoundTexture returns the currently bound texture.
func (l *Layer) BoundTexture() (readback.Texture, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.destroyed {
		return nil, fmt.Errorf("%w: layer is destroyed", readback.ErrSourceInvalid)
	}
	if l.tex == nil {
		return nil, fmt.Errorf("%w: no texture is bound", readback.ErrSourceEmpty)
	}
	return l.tex, nil
}

// Ensure Layer implements readback.TextureLayer.
var _ readback.TextureLayer = (*Layer)(nil)
