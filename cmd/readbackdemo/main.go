// Command readbackdemo exercises the readback service end to end: it
// renders an HSV test card into an in-process surface, copies it back
// through the render thread, and saves the resulting bitmap as a PNG.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/gputypes"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/readback"
	"github.com/gogpu/readback/renderthread"
	"github.com/gogpu/readback/surface"
)

func main() {
	var (
		width  = flag.Int("width", 512, "source width")
		height = flag.Int("height", 512, "source height")
		output = flag.String("output", "readback.png", "output file")
	)
	flag.Parse()

	rt := renderthread.New()
	defer rt.Close()

	// Produce a frame and queue it, standing in for a compositor.
	q := surface.NewBufferQueue()
	q.Queue(surface.NewBufferFromImage(testCard(*width, *height)))

	dst := readback.NewBitmap(*width, *height, gputypes.TextureFormatRGBA8Unorm)
	if res := readback.CopySurfaceInto(rt, q, readback.Rect{}, dst); res != readback.CopyResultSuccess {
		log.Fatalf("readback failed: %v", res)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()

	if err := png.Encode(f, dst.ToImage()); err != nil {
		log.Fatalf("Failed to encode: %v", err)
	}

	log.Printf("Readback saved to %s (%dx%d)\n", *output, *width, *height)
}

// testCard renders a hue/value sweep: hue across X, value down Y.
func testCard(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		v := 1.0 - 0.7*float64(y)/float64(h)
		for x := 0; x < w; x++ {
			hue := 360.0 * float64(x) / float64(w)
			c := colorful.Hsv(hue, 0.9, v).Clamped()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(c.R*255 + 0.5)
			img.Pix[i+1] = uint8(c.G*255 + 0.5)
			img.Pix[i+2] = uint8(c.B*255 + 0.5)
			img.Pix[i+3] = 0xFF
		}
	}
	return img
}
