// Package readback provides synchronous GPU-to-CPU pixel readback.
//
// # Overview
//
// readback is the bridge between GPU-resident pixel sources (a window
// surface's buffer queue, a compositing texture layer) and a CPU-side
// bitmap. Each copy operation is a single-shot, blocking request: the
// caller's goroutine suspends while a dedicated render thread performs
// the transfer, and receives exactly one typed CopyResult when the copy
// completes, times out, or fails.
//
// # Quick Start
//
//	rt := renderthread.New()
//	defer rt.Close()
//
//	dst := readback.NewBitmap(256, 256, gputypes.TextureFormatRGBA8Unorm)
//	res := readback.CopySurfaceInto(rt, surf, readback.Rect{}, dst)
//	if res != readback.CopyResultSuccess {
//	    log.Fatalf("copy failed: %v", res)
//	}
//
// # Result Codes
//
// CopyResult is a closed enumeration with pinned numeric values shared
// with consumer-side pixel-copy APIs: Success (0), UnknownError (1),
// Timeout (2), SourceEmpty (3), SourceInvalid (4), DestinationInvalid (5).
// All internal failures are mapped to the closest code before returning;
// no error crosses the API boundary.
//
// # Architecture
//
// The library is organized into:
//   - Root package: CopyResult, Rect, Bitmap, source interfaces, the two
//     copy operations
//   - renderthread: the single dedicated worker that serializes all
//     requests against the shared GPU context
//   - surface: in-process Buffer, BufferQueue and Layer implementations
//     of the source interfaces
//
// The copy operations are stateless free functions; all collaborators
// (render thread, source, destination) are passed explicitly per call.
//
// # Ownership
//
// Sources are borrowed for the duration of a call only. The destination
// bitmap is caller-owned: on Success it is fully populated, on any
// failure it is left untouched. Callers must not assume partial-copy
// semantics.
//
// # Concurrency
//
// Requests from multiple goroutines are serialized by the render
// thread's queue; concurrent copies against independent sources never
// contaminate each other's destination, but their GPU-side execution
// order is queue order, not call order. There is no cancellation: a
// request runs to completion, timeout, or error, and retry policy is a
// caller concern.
package readback

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
