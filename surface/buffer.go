// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/draw"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/readback"
)

// Buffer is a CPU-backed pixel buffer implementing readback.Texture.
// Content is always stored as RGBA8.
//
// Buffer is safe for concurrent use: a producer may Upload new content
// while the render thread downloads the previous frame.
type Buffer struct {
	mu  sync.RWMutex
	img *image.RGBA
}

// NewBuffer creates an empty (transparent) buffer with the given
// dimensions. Dimensions are clamped to a minimum of 1x1.
func NewBuffer(width, height int) *Buffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Buffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// NewBufferFromImage creates a buffer holding a copy of img. The buffer
// origin is (0, 0) regardless of the image bounds.
func NewBufferFromImage(img image.Image) *Buffer {
	b := NewBuffer(img.Bounds().Dx(), img.Bounds().Dy())
	draw.Draw(b.img, b.img.Bounds(), img, img.Bounds().Min, draw.Src)
	return b
}

// Upload replaces the buffer content with a copy of img. The buffer
// keeps its own dimensions; img is drawn from its top-left corner.
func (b *Buffer) Upload(img image.Image) {
	b.mu.Lock()
	defer b.mu.Unlock()
	draw.Draw(b.img, b.img.Bounds(), img, img.Bounds().Min, draw.Src)
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.img.Bounds().Dx()
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.img.Bounds().Dy()
}

// Format returns the buffer pixel format (always RGBA8).
func (b *Buffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Download returns a copy of the current content. The copy is detached:
// later Uploads do not affect it.
func (b *Buffer) Download() (*image.RGBA, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := image.NewRGBA(b.img.Bounds())
	copy(out.Pix, b.img.Pix)
	return out, nil
}

// Ensure Buffer implements readback.Texture.
var _ readback.Texture = (*Buffer)(nil)
