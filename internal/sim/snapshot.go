package sim

import (
	"math"

	"github.com/vovakirdan/colorbubble/internal/core"
)

// Snapshot is everything a renderer needs for one frame.
// It shares no memory with the game.
type Snapshot struct {
	Tick uint64

	PlayerPos    core.Vec2
	PlayerVel    core.Vec2
	PlayerColor  core.RGBA
	PlayerHidden bool
	FacingRight  bool
	OnGround     bool
	Deaths       int

	HasBubble   bool
	BubblePos   core.Vec2
	BubbleColor core.RGBA

	Splashes []Splash

	PortalPos   core.Vec2
	PortalGlow  float64
	PortalState PortalState
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	snap := Snapshot{
		Tick:         g.ticks,
		PlayerPos:    p.Pos,
		PlayerVel:    p.Vel,
		PlayerColor:  p.Color(),
		PlayerHidden: p.Hidden,
		FacingRight:  p.facingRight,
		OnGround:     p.onGround,
		Deaths:       p.Deaths,
		Splashes:     append([]Splash(nil), g.splashes...),
		PortalPos:    g.portal.Pos,
		PortalGlow:   g.portal.Glow(),
		PortalState:  g.portal.state,
	}
	if g.bubble != nil {
		snap.HasBubble = true
		snap.BubblePos = g.bubble.Pos
		snap.BubbleColor = g.bubble.Color
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by their bit patterns, so any divergence shows up.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(f float64) {
		h = h*31 + math.Float64bits(f)
	}
	flag := func(b bool) {
		h *= 31
		if b {
			h++
		}
	}

	mix(snap.PlayerPos.X)
	mix(snap.PlayerPos.Y)
	mix(snap.PlayerVel.X)
	mix(snap.PlayerVel.Y)
	mix(snap.PlayerColor.R)
	mix(snap.PlayerColor.G)
	mix(snap.PlayerColor.B)
	flag(snap.PlayerHidden)
	flag(snap.FacingRight)
	flag(snap.OnGround)
	h = h*31 + uint64(snap.Deaths) //#nosec G115 -- hash computation

	flag(snap.HasBubble)
	mix(snap.BubblePos.X)
	mix(snap.BubblePos.Y)

	for _, s := range snap.Splashes {
		mix(s.Pos.X)
		mix(s.Pos.Y)
		mix(s.Vel.X)
		mix(s.Vel.Y)
		h = h*31 + uint64(s.Age) //#nosec G115 -- hash computation
	}

	mix(snap.PortalGlow)
	h = h*31 + uint64(snap.PortalState) //#nosec G115 -- hash computation
	return h
}
