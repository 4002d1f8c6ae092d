package level

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	_ "image/png" // Primary level format

	// Extra formats for hand-made levels
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/vovakirdan/colorbubble/internal/core"
)

// Reserved marker colors. Alpha is ignored when matching.
var (
	ColorEntryPoint = color.NRGBA{R: 0, G: 99, B: 0, A: 255}
	ColorPortal     = color.NRGBA{R: 0, G: 98, B: 0, A: 255}
	ColorHazard     = color.NRGBA{R: 0, G: 0, B: 100, A: 255}
	ColorSolid      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// ErrEmptyImage is returned for images without pixels.
var ErrEmptyImage = errors.New("level: image has no pixels")

// Decode reads an image in any registered format (PNG, BMP, TIFF, WebP) and
// builds its oracle.
func Decode(name string, r io.Reader) (*Oracle, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("level: decode %s: %w", name, err)
	}
	o, err := FromImage(name, img)
	if err != nil {
		return nil, fmt.Errorf("level: build %s (%s): %w", name, format, err)
	}
	return o, nil
}

// FromImage classifies every pixel of img. Image row 0 is the top of the
// level; the oracle flips it so y grows upward. When a marker color appears
// more than once the last pixel in scan order (bottom to top, left to right)
// wins.
func FromImage(name string, img image.Image) (*Oracle, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	// Normalize to non-premultiplied 8-bit so marker matching ignores the
	// source format. Decoded RGBA PNGs are already NRGBA and keep the color
	// of fully transparent pixels that way.
	src, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		src = image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)
	}

	o := &Oracle{
		name:    name,
		width:   w,
		height:  h,
		classes: make([]Class, w*h),
		art:     image.NewRGBA(image.Rect(0, 0, w, h)),
	}

	for y := 0; y < h; y++ {
		srcRow := h - 1 - y
		for x := 0; x < w; x++ {
			px := src.NRGBAAt(x, srcRow)
			o.art.Set(x, y, px)

			px.A = 255
			switch px {
			case ColorEntryPoint:
				o.entry = core.IVec2{X: x, Y: y}
			case ColorPortal:
				o.portal = core.IVec2{X: x, Y: y}
			case ColorSolid:
				o.classes[y*w+x] = Solid
			case ColorHazard:
				o.classes[y*w+x] = Hazard
			}
		}
	}
	return o, nil
}
