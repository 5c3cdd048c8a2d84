package readback

import (
	"image"

	"github.com/gogpu/gputypes"
)

// Texture is a borrowed pixel source. The readback service holds the
// reference only for the duration of a copy call; there is no ownership
// transfer and no retained reference after the call returns.
//
// Implementations are provided by hosts (a window system integration, a
// GPU texture wrapper) or by the surface package for in-process use.
type Texture interface {
	// Width returns the source width in pixels.
	Width() int

	// Height returns the source height in pixels.
	Height() int

	// Format returns the source pixel format.
	Format() gputypes.TextureFormat

	// Download resolves the current contents into CPU memory.
	// The readback service always calls Download on the render thread,
	// so implementations backed by a shared GPU context need no
	// additional synchronization against other render work.
	// The returned image must be safe for the caller to read after the
	// source is released.
	Download() (*image.RGBA, error)
}

// Surface is the consumer side of a producer/consumer buffer queue,
// typically representing a window's drawable output.
type Surface interface {
	// LatestBuffer returns the most recently queued buffer.
	// It returns ErrSourceEmpty if no buffer was ever queued, and
	// ErrSourceInvalid if the surface is detached or destroyed.
	LatestBuffer() (Texture, error)
}

// TextureLayer is a compositing layer whose content is a live GPU
// texture rather than a queued buffer.
type TextureLayer interface {
	// BoundTexture returns the texture the layer is currently
	// compositing. It returns ErrSourceEmpty if no texture is bound,
	// and ErrSourceInvalid if the layer has been destroyed.
	BoundTexture() (Texture, error)
}
