package readback

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// sourceRegion resolves the requested source rectangle against the
// downloaded source bounds. An empty rect means the whole source; a rect
// not fully contained in the source is a SourceInvalid condition.
func sourceRegion(src *image.RGBA, srcRect Rect) (image.Rectangle, error) {
	full := src.Bounds()
	if srcRect.IsEmpty() {
		return full, nil
	}
	r := srcRect.ToImageRect()
	if !r.In(full) {
		return image.Rectangle{}, fmt.Errorf("%w: source rect %v outside bounds %v",
			ErrSourceInvalid, r, full)
	}
	return r, nil
}

// renderScratch produces a w×h RGBA image holding the sr region of src,
// scaled when the region and destination dimensions differ. The scratch
// is private to one copy request; the destination bitmap is only written
// after the render thread finished inside the wait window.
func renderScratch(src *image.RGBA, sr image.Rectangle, w, h int, f Filter) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if sr.Dx() == w && sr.Dy() == h {
		draw.Draw(dst, dst.Bounds(), src, sr.Min, draw.Src)
		return dst
	}
	scalerFor(f).Scale(dst, dst.Bounds(), src, sr, xdraw.Src, nil)
	return dst
}

func scalerFor(f Filter) xdraw.Scaler {
	if f == FilterBilinear {
		return xdraw.ApproxBiLinear
	}
	return xdraw.NearestNeighbor
}

// commitScratch writes a destination-sized RGBA scratch into the bitmap,
// swizzling to the destination format. The scratch dimensions match the
// bitmap by construction, so commit cannot fail; format support was
// validated before the request was submitted.
func commitScratch(dst *Bitmap, scratch *image.RGBA) {
	switch dst.format {
	case gputypes.TextureFormatRGBA8Unorm:
		for y := 0; y < dst.height; y++ {
			src := scratch.Pix[y*scratch.Stride : y*scratch.Stride+dst.width*4]
			copy(dst.pix[y*dst.stride:], src)
		}
	case gputypes.TextureFormatBGRA8Unorm:
		for y := 0; y < dst.height; y++ {
			si := y * scratch.Stride
			di := y * dst.stride
			for x := 0; x < dst.width; x++ {
				dst.pix[di+0] = scratch.Pix[si+2]
				dst.pix[di+1] = scratch.Pix[si+1]
				dst.pix[di+2] = scratch.Pix[si+0]
				dst.pix[di+3] = scratch.Pix[si+3]
				si += 4
				di += 4
			}
		}
	case gputypes.TextureFormatR8Unorm:
		for y := 0; y < dst.height; y++ {
			si := y * scratch.Stride
			di := y * dst.stride
			for x := 0; x < dst.width; x++ {
				r := uint32(scratch.Pix[si+0])
				g := uint32(scratch.Pix[si+1])
				b := uint32(scratch.Pix[si+2])
				// BT.601 luma, same coefficients as color.GrayModel.
				dst.pix[di] = uint8((19595*r + 38470*g + 7471*b + 1<<15) >> 16)
				si += 4
				di++
			}
		}
	}
}
