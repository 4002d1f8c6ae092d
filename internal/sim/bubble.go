package sim

import (
	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
)

// Bubble is the player's projectile. It drifts until it touches solid
// geometry or is replaced by a newer bubble, then pops into a splash burst.
type Bubble struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Color core.RGBA
	Dead  bool
}

// NewBubble creates a live bubble.
func NewBubble(pos, vel core.Vec2, color core.RGBA) *Bubble {
	return &Bubble{Pos: pos, Vel: vel, Color: color}
}

// Update moves the bubble one tick. A bubble that would enter solid
// geometry pops where it is instead, appending its burst to splashes.
func (b *Bubble) Update(l Level, cfg config.BubbleConfig, splashes []Splash) []Splash {
	if b.Dead {
		return splashes
	}
	b.Vel = b.Vel.Scale(cfg.Damping).Add(cfg.Gravity.V())
	next := b.Pos.Add(b.Vel)
	if l.IsHit(next.Trunc()) {
		return b.Pop(cfg, splashes)
	}
	b.Pos = next
	return splashes
}

// Pop kills the bubble and appends its burst. Popping a dead bubble is a no-op.
func (b *Bubble) Pop(cfg config.BubbleConfig, splashes []Splash) []Splash {
	if b.Dead {
		return splashes
	}
	b.Dead = true
	return SpawnBurst(splashes, b.Pos, cfg.BurstRadius, cfg.BurstSpeed, b.Color, cfg.BurstCount)
}
