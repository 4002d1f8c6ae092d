// Package level turns level images into a collision oracle.
//
// An Oracle is built once per level from a decoded image and is immutable
// afterwards, so every entity and the renderer can share one *Oracle without
// locking. A level transition replaces the pointer rather than mutating it.
//
// Coordinates are pixels with the origin at the bottom-left corner of the
// image and y growing upward.
package level

import (
	"image"

	"github.com/vovakirdan/colorbubble/internal/core"
)

// Class is the collision classification of one pixel.
type Class uint8

const (
	Empty Class = iota
	Solid
	Hazard
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case Empty:
		return "empty"
	case Solid:
		return "solid"
	case Hazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Oracle answers point and rect collision queries against a level's pixel mask.
type Oracle struct {
	name    string
	width   int
	height  int
	classes []Class // row-major, y = 0 is the bottom row
	entry   core.IVec2
	portal  core.IVec2
	art     *image.RGBA // source image, flipped to oracle orientation
}

// Name returns the level name, usually the file name it was loaded from.
func (o *Oracle) Name() string {
	return o.name
}

// Size returns the level width and height in pixels.
func (o *Oracle) Size() core.IVec2 {
	return core.IVec2{X: o.width, Y: o.height}
}

// Bounds returns the level area as a rect anchored at the origin.
func (o *Oracle) Bounds() core.Rect {
	return core.NewRect(0, 0, o.width, o.height)
}

// EntryPoint returns the pixel marked as the player spawn.
func (o *Oracle) EntryPoint() core.IVec2 {
	return o.entry
}

// Portal returns the pixel marked as the level exit.
func (o *Oracle) Portal() core.IVec2 {
	return o.portal
}

// Art returns the level image in oracle orientation (row 0 is the bottom).
// Callers must not modify it.
func (o *Oracle) Art() *image.RGBA {
	return o.art
}

// Classify returns the stored class at p.
// Points outside the level, including the both-negative quadrant, are Empty.
func (o *Oracle) Classify(p core.IVec2) Class {
	if p.X < 0 && p.Y < 0 {
		return Empty
	}
	if !o.inBounds(p) {
		return Empty
	}
	return o.classes[p.Y*o.width+p.X]
}

// IsHit reports whether p is solid geometry.
// Out-of-bounds points never collide.
func (o *Oracle) IsHit(p core.IVec2) bool {
	if p.X < 0 && p.Y < 0 {
		return false
	}
	if !o.inBounds(p) {
		return false
	}
	return o.classes[p.Y*o.width+p.X] == Solid
}

// IsDeath reports whether p kills the player.
// Out-of-bounds points are fatal, and so is the both-negative quadrant even
// though IsHit reports it as empty.
func (o *Oracle) IsDeath(p core.IVec2) bool {
	if p.X < 0 && p.Y < 0 {
		return true
	}
	if !o.inBounds(p) {
		return true
	}
	return o.classes[p.Y*o.width+p.X] == Hazard
}

// RectIntersectsSolid reports whether any pixel covered by r is solid.
// The part of r outside the level is ignored.
func (o *Oracle) RectIntersectsSolid(r core.Rect) bool {
	r = r.Intersect(o.Bounds())
	for y := r.Y; y < r.MaxY(); y++ {
		row := o.classes[y*o.width : (y+1)*o.width]
		for x := r.X; x < r.MaxX(); x++ {
			if row[x] == Solid {
				return true
			}
		}
	}
	return false
}

// CollisionRect tests the pixels covered by the continuous box [min, max].
// Both corners are truncated and the max corner is made inclusive.
func (o *Oracle) CollisionRect(min, max core.Vec2) bool {
	lo := min.Trunc()
	hi := max.Trunc()
	return o.RectIntersectsSolid(core.RectFromCorners(lo, core.IVec2{X: hi.X + 1, Y: hi.Y + 1}))
}

// Count returns how many pixels carry each class.
func (o *Oracle) Count() map[Class]int {
	counts := make(map[Class]int, 3)
	for _, c := range o.classes {
		counts[c]++
	}
	return counts
}

func (o *Oracle) inBounds(p core.IVec2) bool {
	return p.X >= 0 && p.X < o.width && p.Y >= 0 && p.Y < o.height
}
