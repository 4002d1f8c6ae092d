package sim

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
	"github.com/vovakirdan/colorbubble/internal/level"
)

// layout describes a test level in oracle coordinates (y up).
type layout struct {
	w, h   int
	solid  []core.Rect
	hazard []core.Rect
	entry  core.IVec2
	portal core.IVec2
}

// build paints the layout into an image (y down) and decodes it.
func (l layout) build(t *testing.T) *level.Oracle {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, l.w, l.h))
	bg := color.NRGBA{R: 20, G: 20, B: 40, A: 255}
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			img.SetNRGBA(x, y, bg)
		}
	}
	set := func(x, y int, c color.NRGBA) {
		img.SetNRGBA(x, l.h-1-y, c)
	}
	fill := func(rs []core.Rect, c color.NRGBA) {
		for _, r := range rs {
			for y := r.Y; y < r.MaxY(); y++ {
				for x := r.X; x < r.MaxX(); x++ {
					set(x, y, c)
				}
			}
		}
	}
	fill(l.solid, level.ColorSolid)
	fill(l.hazard, level.ColorHazard)
	set(l.entry.X, l.entry.Y, level.ColorEntryPoint)
	set(l.portal.X, l.portal.Y, level.ColorPortal)

	o, err := level.FromImage("test", img)
	if err != nil {
		t.Fatalf("FromImage() failed: %v", err)
	}
	return o
}

// floorLevel is 200x200 with solid ground on rows 0..49, the entry standing
// on it and the portal far away.
func floorLevel(t *testing.T) *level.Oracle {
	return layout{
		w: 200, h: 200,
		solid:  []core.Rect{core.NewRect(0, 0, 200, 50)},
		entry:  core.IVec2{X: 100, Y: 50},
		portal: core.IVec2{X: 190, Y: 190},
	}.build(t)
}

func tuning() config.Tuning {
	return config.DefaultTuning()
}
