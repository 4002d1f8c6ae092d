package core

import (
	"fmt"
	"math"
)

// RGBA is a linear color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// White is opaque white.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// HSV converts hue, saturation and value (all in [0, 1]) to an opaque color.
// Hue wraps, so 1.0 and 0.0 are both red.
func HSV(h, s, v float64) RGBA {
	h = h - math.Floor(h)
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	switch int(i) % 6 {
	case 0:
		return RGBA{R: v, G: t, B: p, A: 1}
	case 1:
		return RGBA{R: q, G: v, B: p, A: 1}
	case 2:
		return RGBA{R: p, G: v, B: t, A: 1}
	case 3:
		return RGBA{R: p, G: q, B: v, A: 1}
	case 4:
		return RGBA{R: t, G: p, B: v, A: 1}
	default:
		return RGBA{R: v, G: p, B: q, A: 1}
	}
}

// Bytes returns the color quantized to 8 bits per channel.
func (c RGBA) Bytes() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

// Hex formats the color as #rrggbb, suitable for terminal true-color styles.
func (c RGBA) Hex() string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Lerp blends c toward o by t in [0, 1].
func (c RGBA) Lerp(o RGBA, t float64) RGBA {
	t = ClampF(t, 0, 1)
	return RGBA{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

func to8(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 255))
}
