package readback

import "errors"

// Sentinel errors used by source and destination validation. The copy
// operations never return these directly; they are classified into
// CopyResult codes before crossing the API boundary. Source
// implementations (surface/, host integrations) return them to signal
// the matching condition.
var (
	// ErrSourceEmpty indicates the source has never produced pixel
	// content: a surface with no queued buffer, or a layer with no
	// bound texture.
	ErrSourceEmpty = errors.New("readback: source is empty")

	// ErrSourceInvalid indicates the source reference is unusable
	// (detached, destroyed, or incompatible with the requested region).
	ErrSourceInvalid = errors.New("readback: source is invalid")

	// ErrDestinationInvalid indicates the destination bitmap cannot
	// receive the copy (nil, zero dimensions, unsupported format, or a
	// backing slice too small for its declared geometry).
	ErrDestinationInvalid = errors.New("readback: destination is invalid")
)
