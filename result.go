package readback

import (
	"errors"
	"fmt"

	"github.com/gogpu/readback/renderthread"
)

// CopyResult is the outcome of a single readback request.
//
// The numeric values are a stable contract shared with higher-level
// pixel-copy APIs on the consumer side. Values must never be renumbered;
// new codes may only be appended.
type CopyResult int32

const (
	// CopyResultSuccess indicates the transfer completed and the
	// destination bitmap was fully populated.
	CopyResultSuccess CopyResult = 0

	// CopyResultUnknownError indicates an internal failure that does not
	// map to any of the more specific codes (driver error, allocation
	// failure, unexpected state).
	CopyResultUnknownError CopyResult = 1

	// CopyResultTimeout indicates the render thread did not complete the
	// transfer within the allowed wait window.
	CopyResultTimeout CopyResult = 2

	// CopyResultSourceEmpty indicates the source has never produced any
	// pixel content (no buffer queued, no texture bound).
	CopyResultSourceEmpty CopyResult = 3

	// CopyResultSourceInvalid indicates the source reference is unusable:
	// detached, destroyed, or incompatible with the requested region.
	CopyResultSourceInvalid CopyResult = 4

	// CopyResultDestinationInvalid indicates the destination bitmap is
	// nil, has zero dimensions, or uses an unsupported pixel format.
	CopyResultDestinationInvalid CopyResult = 5
)

// String returns a human-readable name for the result code.
func (r CopyResult) String() string {
	switch r {
	case CopyResultSuccess:
		return "Success"
	case CopyResultUnknownError:
		return "UnknownError"
	case CopyResultTimeout:
		return "Timeout"
	case CopyResultSourceEmpty:
		return "SourceEmpty"
	case CopyResultSourceInvalid:
		return "SourceInvalid"
	case CopyResultDestinationInvalid:
		return "DestinationInvalid"
	default:
		return fmt.Sprintf("CopyResult(%d)", int32(r))
	}
}

// resultFromError maps an internal error to the closest CopyResult.
// Classification uses errors.Is, so wrapped errors map correctly.
// Any error that matches no sentinel becomes UnknownError; nothing is
// allowed to escape this boundary unmapped.
func resultFromError(err error) CopyResult {
	switch {
	case err == nil:
		return CopyResultSuccess
	case errors.Is(err, ErrDestinationInvalid):
		return CopyResultDestinationInvalid
	case errors.Is(err, ErrSourceEmpty):
		return CopyResultSourceEmpty
	case errors.Is(err, ErrSourceInvalid):
		return CopyResultSourceInvalid
	case errors.Is(err, renderthread.ErrTimeout):
		return CopyResultTimeout
	default:
		return CopyResultUnknownError
	}
}
