// Package sim is the fixed-timestep simulation: player, bubbles, splash
// particles and portals moving against a level's collision mask.
//
// Everything in this package is single threaded and deterministic. The same
// sequence of elapsed times and intents always produces bit-identical state.
package sim

import (
	"math"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
)

// Level is the read-only collision view entities move against.
// *level.Oracle implements it.
type Level interface {
	IsHit(p core.IVec2) bool
	IsDeath(p core.IVec2) bool
	EntryPoint() core.IVec2
	Portal() core.IVec2
}

// Splash is one particle of a burst.
type Splash struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Color core.RGBA
	Age   int // ticks since spawn
}

// SpawnBurst appends count particles spread evenly around a ring of the given
// radius. Particle i starts at pos + dir*radius and moves along dir*speed,
// where dir points at angle 2*pi*i/count.
func SpawnBurst(dst []Splash, pos core.Vec2, radius, speed float64, color core.RGBA, count int) []Splash {
	for i := 0; i < count; i++ {
		dir := core.FromAngle(2 * math.Pi * float64(i) / float64(count))
		dst = append(dst, Splash{
			Pos:   pos.Add(dir.Scale(radius)),
			Vel:   dir.Scale(speed),
			Color: color,
		})
	}
	return dst
}

// Update advances the particle by one tick and reports whether it should
// despawn: it landed on solid geometry or outlived cfg.MaxAge.
func (s *Splash) Update(l Level, cfg config.SplashConfig) bool {
	s.Vel = s.Vel.Scale(cfg.Damping).Add(cfg.Gravity.V())
	s.Pos = s.Pos.Add(s.Vel)
	s.Age++
	return l.IsHit(s.Pos.Trunc()) || s.Age > cfg.MaxAge
}
