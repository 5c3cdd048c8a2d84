package readback

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

// gradientImage produces an image where each pixel encodes its own
// coordinates, so copies and crops are easy to verify.
func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x10, A: 0xFF})
		}
	}
	return img
}

func TestSourceRegionWholeSource(t *testing.T) {
	src := gradientImage(8, 6)
	got, err := sourceRegion(src, Rect{})
	if err != nil {
		t.Fatalf("sourceRegion: %v", err)
	}
	if got != src.Bounds() {
		t.Errorf("region = %v, want %v", got, src.Bounds())
	}
}

func TestSourceRegionCrop(t *testing.T) {
	src := gradientImage(8, 6)
	got, err := sourceRegion(src, NewRect(2, 1, 6, 5))
	if err != nil {
		t.Fatalf("sourceRegion: %v", err)
	}
	if got != image.Rect(2, 1, 6, 5) {
		t.Errorf("region = %v", got)
	}
}

func TestSourceRegionOutOfBounds(t *testing.T) {
	src := gradientImage(8, 6)
	_, err := sourceRegion(src, NewRect(4, 4, 12, 12))
	if !errors.Is(err, ErrSourceInvalid) {
		t.Errorf("err = %v, want ErrSourceInvalid", err)
	}
}

func TestRenderScratchCrop(t *testing.T) {
	src := gradientImage(8, 8)
	got := renderScratch(src, image.Rect(2, 3, 6, 7), 4, 4, FilterNearest)

	if got.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	// (0,0) of the scratch is (2,3) of the source.
	if c := got.RGBAAt(0, 0); c.R != 2 || c.G != 3 {
		t.Errorf("pixel (0,0) = %v, want coords (2,3)", c)
	}
	if c := got.RGBAAt(3, 3); c.R != 5 || c.G != 6 {
		t.Errorf("pixel (3,3) = %v, want coords (5,6)", c)
	}
}

func TestRenderScratchScaleDown(t *testing.T) {
	// A solid source stays solid through any scaler.
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i+0] = 0x40
		src.Pix[i+1] = 0x80
		src.Pix[i+2] = 0xC0
		src.Pix[i+3] = 0xFF
	}

	for _, f := range []Filter{FilterNearest, FilterBilinear} {
		got := renderScratch(src, src.Bounds(), 2, 2, f)
		if got.Bounds() != image.Rect(0, 0, 2, 2) {
			t.Fatalf("filter %d: bounds = %v", f, got.Bounds())
		}
		if c := got.RGBAAt(1, 1); c != (color.RGBA{R: 0x40, G: 0x80, B: 0xC0, A: 0xFF}) {
			t.Errorf("filter %d: pixel = %v", f, c)
		}
	}
}

func TestCommitScratchRGBA(t *testing.T) {
	scratch := gradientImage(3, 2)
	dst := NewBitmap(3, 2, gputypes.TextureFormatRGBA8Unorm)
	commitScratch(dst, scratch)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			want := color.RGBA{R: uint8(x), G: uint8(y), B: 0x10, A: 0xFF}
			if got := dst.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCommitScratchBGRA(t *testing.T) {
	scratch := image.NewRGBA(image.Rect(0, 0, 1, 1))
	scratch.SetRGBA(0, 0, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44})

	dst := NewBitmap(1, 1, gputypes.TextureFormatBGRA8Unorm)
	commitScratch(dst, scratch)

	want := []uint8{0x33, 0x22, 0x11, 0x44} // B, G, R, A
	for i, b := range want {
		if dst.Pix()[i] != b {
			t.Errorf("byte %d = %#02x, want %#02x", i, dst.Pix()[i], b)
		}
	}
}

func TestCommitScratchR8(t *testing.T) {
	scratch := image.NewRGBA(image.Rect(0, 0, 2, 1))
	scratch.SetRGBA(0, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	scratch.SetRGBA(1, 0, color.RGBA{A: 0xFF})

	dst := NewBitmap(2, 1, gputypes.TextureFormatR8Unorm)
	commitScratch(dst, scratch)

	if dst.Pix()[0] != 0xFF {
		t.Errorf("white luma = %#02x, want 0xFF", dst.Pix()[0])
	}
	if dst.Pix()[1] != 0x00 {
		t.Errorf("black luma = %#02x, want 0x00", dst.Pix()[1])
	}

	// Spot-check a mid color against the stdlib gray conversion.
	scratch.SetRGBA(0, 0, color.RGBA{R: 0x20, G: 0x80, B: 0xE0, A: 0xFF})
	commitScratch(dst, scratch)
	want := color.GrayModel.Convert(color.RGBA{R: 0x20, G: 0x80, B: 0xE0, A: 0xFF}).(color.Gray).Y
	if dst.Pix()[0] != want {
		t.Errorf("luma = %#02x, want %#02x", dst.Pix()[0], want)
	}
}

func BenchmarkCommitScratchRGBA(b *testing.B) {
	scratch := gradientImage(1920, 1080)
	dst := NewBitmap(1920, 1080, gputypes.TextureFormatRGBA8Unorm)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		commitScratch(dst, scratch)
	}
}

func BenchmarkCommitScratchBGRA(b *testing.B) {
	scratch := gradientImage(1920, 1080)
	dst := NewBitmap(1920, 1080, gputypes.TextureFormatBGRA8Unorm)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		commitScratch(dst, scratch)
	}
}
