package readback

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Bitmap is a CPU-side destination pixel buffer. The readback service
// writes into a Bitmap but never allocates, retains, or frees one; the
// caller owns the backing memory and guarantees it stays valid for the
// duration of the copy call.
//
// Supported formats are RGBA8Unorm, BGRA8Unorm and R8Unorm. A copy into
// a Bitmap with any other format fails with DestinationInvalid.
type Bitmap struct {
	width  int
	height int
	stride int
	format gputypes.TextureFormat
	pix    []uint8
}

// NewBitmap creates a bitmap with the given dimensions and format,
// allocating a tightly packed backing buffer. Dimensions are not
// clamped: a zero-sized bitmap is representable, and copying into one
// fails with DestinationInvalid.
func NewBitmap(width, height int, format gputypes.TextureFormat) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride := width * formatBytesPerPixel(format)
	return &Bitmap{
		width:  width,
		height: height,
		stride: stride,
		format: format,
		pix:    make([]uint8, stride*height),
	}
}

// NewBitmapFromImage creates an RGBA8Unorm bitmap sharing the image's
// backing memory. Writes to the bitmap are visible through img.
func NewBitmapFromImage(img *image.RGBA) *Bitmap {
	return &Bitmap{
		width:  img.Bounds().Dx(),
		height: img.Bounds().Dy(),
		stride: img.Stride,
		format: gputypes.TextureFormatRGBA8Unorm,
		pix:    img.Pix,
	}
}

// WrapBitmap wraps caller-provided pixel memory without copying.
// The slice must hold at least stride*height bytes and the stride must
// cover a full row of the given format.
func WrapBitmap(pix []uint8, width, height, stride int, format gputypes.TextureFormat) (*Bitmap, error) {
	bpp := formatBytesPerPixel(format)
	if bpp == 0 {
		return nil, fmt.Errorf("%w: unsupported format %v", ErrDestinationInvalid, format)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrDestinationInvalid, width, height)
	}
	if stride < width*bpp {
		return nil, fmt.Errorf("%w: stride %d < row size %d", ErrDestinationInvalid, stride, width*bpp)
	}
	if len(pix) < stride*height {
		return nil, fmt.Errorf("%w: buffer %d bytes < required %d", ErrDestinationInvalid, len(pix), stride*height)
	}
	return &Bitmap{width: width, height: height, stride: stride, format: format, pix: pix}, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Stride returns the number of bytes per row.
func (b *Bitmap) Stride() int { return b.stride }

// Format returns the bitmap pixel format.
func (b *Bitmap) Format() gputypes.TextureFormat { return b.format }

// Pix returns the raw backing pixel data.
func (b *Bitmap) Pix() []uint8 { return b.pix }

// Clone returns a deep copy of the bitmap with its own backing memory.
func (b *Bitmap) Clone() *Bitmap {
	pix := make([]uint8, len(b.pix))
	copy(pix, b.pix)
	return &Bitmap{
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
		pix:    pix,
	}
}

// ToImage converts the bitmap to an image.RGBA copy, expanding
// single-channel and swizzled formats along the way.
func (b *Bitmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			img.SetRGBA(x, y, b.rgbaAt(x, y))
		}
	}
	return img
}

// validate reports whether the bitmap can receive a copy.
func (b *Bitmap) validate() error {
	if b == nil {
		return fmt.Errorf("%w: bitmap is nil", ErrDestinationInvalid)
	}
	if b.width <= 0 || b.height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrDestinationInvalid, b.width, b.height)
	}
	bpp := formatBytesPerPixel(b.format)
	if bpp == 0 {
		return fmt.Errorf("%w: unsupported format %v", ErrDestinationInvalid, b.format)
	}
	if b.stride < b.width*bpp || len(b.pix) < b.stride*b.height {
		return fmt.Errorf("%w: backing buffer too small", ErrDestinationInvalid)
	}
	return nil
}

func (b *Bitmap) rgbaAt(x, y int) color.RGBA {
	i := y*b.stride + x*formatBytesPerPixel(b.format)
	switch b.format {
	case gputypes.TextureFormatRGBA8Unorm:
		return color.RGBA{R: b.pix[i+0], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
	case gputypes.TextureFormatBGRA8Unorm:
		return color.RGBA{R: b.pix[i+2], G: b.pix[i+1], B: b.pix[i+0], A: b.pix[i+3]}
	case gputypes.TextureFormatR8Unorm:
		v := b.pix[i]
		return color.RGBA{R: v, G: v, B: v, A: 0xFF}
	default:
		return color.RGBA{}
	}
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	return b.rgbaAt(x, y)
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.RGBAModel
}

// formatBytesPerPixel returns the pixel size for a supported destination
// format, or 0 for an unsupported one.
func formatBytesPerPixel(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return 4
	case gputypes.TextureFormatR8Unorm:
		return 1
	default:
		return 0
	}
}
