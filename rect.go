package readback

import "image"

// Rect describes an axis-aligned source region in source pixel
// coordinates. It mirrors the Left/Top/Right/Bottom convention used by
// windowing systems; Right and Bottom are exclusive.
//
// A zero Rect is "empty" and means "the whole source" when passed to a
// copy operation.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRect creates a Rect from left/top/right/bottom coordinates.
func NewRect(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectFromImage converts an image.Rectangle to a Rect.
func RectFromImage(r image.Rectangle) Rect {
	return Rect{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}

// Width returns the region width in pixels.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the region height in pixels.
func (r Rect) Height() int { return r.Bottom - r.Top }

// IsEmpty reports whether the region contains no pixels.
func (r Rect) IsEmpty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// ToImageRect converts the Rect to an image.Rectangle.
func (r Rect) ToImageRect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// Intersect returns the largest region contained in both r and other.
// The result is empty if the regions do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	return RectFromImage(r.ToImageRect().Intersect(other.ToImageRect()))
}

// In reports whether r is entirely contained in other.
// An empty region is contained in everything.
func (r Rect) In(other Rect) bool {
	if r.IsEmpty() {
		return true
	}
	return r.ToImageRect().In(other.ToImageRect())
}
