package readback

import "time"

// DefaultCopyTimeout is the wait window granted to the render thread for
// a single copy request when no WithTimeout option is given.
const DefaultCopyTimeout = 1 * time.Second

// Filter selects the interpolation used when the source region and the
// destination bitmap have different dimensions.
type Filter uint8

const (
	// FilterNearest uses nearest-neighbor interpolation. Fast, exact
	// for same-size copies.
	FilterNearest Filter = iota

	// FilterBilinear uses bilinear interpolation for smoother scaling.
	FilterBilinear
)

// CopyOption configures a single copy operation.
//
// Example:
//
//	res := readback.CopySurfaceInto(rt, s, rect, dst,
//	    readback.WithTimeout(250*time.Millisecond),
//	    readback.WithFilter(readback.FilterBilinear))
type CopyOption func(*copyOptions)

type copyOptions struct {
	timeout time.Duration
	filter  Filter
}

func defaultCopyOptions() copyOptions {
	return copyOptions{
		timeout: DefaultCopyTimeout,
		filter:  FilterNearest,
	}
}

// WithTimeout sets the wait window for the render thread to complete the
// copy. A non-positive duration means wait without bound.
func WithTimeout(d time.Duration) CopyOption {
	return func(o *copyOptions) {
		o.timeout = d
	}
}

// WithFilter sets the interpolation filter used for scaled copies.
func WithFilter(f Filter) CopyOption {
	return func(o *copyOptions) {
		o.filter = f
	}
}
