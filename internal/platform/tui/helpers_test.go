package tui

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/vovakirdan/colorbubble/internal/core"
	"github.com/vovakirdan/colorbubble/internal/level"
)

var testBackground = color.NRGBA{R: 20, G: 20, B: 40, A: 255}

// testLevel builds a w x h level whose rows below floor are solid. The entry
// stands on the floor at x=entryX and the portal sits at portal.
func testLevel(t *testing.T, name string, w, h, floor, entryX int, portal core.IVec2) *level.Oracle {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := testBackground
			if h-1-y < floor {
				c = level.ColorSolid
			}
			img.SetNRGBA(x, y, c)
		}
	}
	img.SetNRGBA(entryX, h-1-floor, level.ColorEntryPoint)
	img.SetNRGBA(portal.X, h-1-portal.Y, level.ColorPortal)

	o, err := level.FromImage(name, img)
	if err != nil {
		t.Fatalf("FromImage() failed: %v", err)
	}
	return o
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
