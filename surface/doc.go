// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides in-process implementations of the readback
// source interfaces.
//
// These types stand in for the window-system collaborators a host would
// normally supply:
//
//   - Buffer: a CPU-backed pixel buffer implementing readback.Texture
//   - BufferQueue: a producer/consumer queue implementing
//     readback.Surface with mailbox semantics (only the most recently
//     queued buffer is retained for consumption)
//   - Layer: a compositing layer implementing readback.TextureLayer
//
// They are used by hosts without a windowing system and by the package
// tests; a real compositor integration implements the same interfaces
// against its own buffer management.
//
// # Usage
//
//	q := surface.NewBufferQueue()
//	q.Queue(surface.NewBufferFromImage(frame))
//
//	dst := readback.NewBitmap(w, h, gputypes.TextureFormatRGBA8Unorm)
//	res := readback.CopySurfaceInto(rt, q, readback.Rect{}, dst)
//
// All types in this package are safe for concurrent use: a producer may
// queue new buffers while the render thread consumes the latest one.
package surface
