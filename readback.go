package readback

import (
	"fmt"
	"image"

	"github.com/gogpu/readback/renderthread"
)

// CopySurfaceInto copies the surface's most recently queued buffer into
// the provided bitmap, blocking the caller until the render thread
// completes the transfer, the wait window elapses, or the request fails.
//
// srcRect selects the region of the source to copy; an empty rect means
// the whole source. When the region and the bitmap have different
// dimensions the content is scaled (see WithFilter).
//
// Exactly one CopyResult is returned per call. On Success the bitmap is
// fully populated; on any failure it is left untouched. No retries are
// performed internally.
func CopySurfaceInto(rt *renderthread.RenderThread, s Surface, srcRect Rect, dst *Bitmap, opts ...CopyOption) CopyResult {
	return copyInto(rt, func() (Texture, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: surface is nil", ErrSourceInvalid)
		}
		return s.LatestBuffer()
	}, srcRect, dst, opts)
}

// CopyTextureLayerInto copies the layer's currently bound texture (thus,
// the currently rendering buffer) into the provided bitmap, with the
// same blocking and timeout discipline as CopySurfaceInto. The full
// texture content is copied, scaled to the bitmap dimensions if needed.
func CopyTextureLayerInto(rt *renderthread.RenderThread, layer TextureLayer, dst *Bitmap, opts ...CopyOption) CopyResult {
	return copyInto(rt, func() (Texture, error) {
		if layer == nil {
			return nil, fmt.Errorf("%w: layer is nil", ErrSourceInvalid)
		}
		return layer.BoundTexture()
	}, Rect{}, dst, opts)
}

// copyInto is the shared single-shot request path: validate the
// destination on the calling goroutine, resolve and download the source
// on the render thread into a private scratch image, then commit the
// scratch into the destination only after an in-deadline completion.
//
// A timed-out task may still finish on the render thread later; its
// scratch is discarded, so the caller's bitmap is never written after
// the call returned.
func copyInto(rt *renderthread.RenderThread, resolve func() (Texture, error), srcRect Rect, dst *Bitmap, opts []CopyOption) CopyResult {
	o := defaultCopyOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := dst.validate(); err != nil {
		Logger().Warn("readback rejected", "err", err)
		return CopyResultDestinationInvalid
	}
	if rt == nil {
		Logger().Warn("readback rejected", "err", "no render thread")
		return CopyResultUnknownError
	}

	width, height := dst.Width(), dst.Height()
	var scratch *image.RGBA
	err := rt.RunWithTimeout(func() error {
		tex, err := resolve()
		if err != nil {
			return err
		}
		if tex == nil {
			return fmt.Errorf("%w: source produced no texture", ErrSourceEmpty)
		}
		src, err := tex.Download()
		if err != nil {
			return fmt.Errorf("readback: download: %w", err)
		}
		if src == nil {
			return fmt.Errorf("%w: source download returned nothing", ErrSourceEmpty)
		}
		region, err := sourceRegion(src, srcRect)
		if err != nil {
			return err
		}
		scratch = renderScratch(src, region, width, height, o.filter)
		return nil
	}, o.timeout)
	if err != nil {
		res := resultFromError(err)
		Logger().Warn("readback failed", "result", res, "err", err)
		return res
	}

	commitScratch(dst, scratch)
	Logger().Debug("readback complete",
		"width", width, "height", height, "format", dst.Format())
	return CopyResultSuccess
}
