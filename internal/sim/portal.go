package sim

import (
	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
)

// PortalState is the portal's countdown phase.
type PortalState int

const (
	PortalIdle     PortalState = iota // armed, waiting for the player
	PortalCounting                    // player captured, counting down
	PortalReady                       // countdown hit zero on this tick
	PortalSpent                       // transition already signalled
)

// String returns a human-readable name for the state.
func (s PortalState) String() string {
	switch s {
	case PortalIdle:
		return "idle"
	case PortalCounting:
		return "counting"
	case PortalReady:
		return "ready"
	case PortalSpent:
		return "spent"
	default:
		return "unknown"
	}
}

// Portal is the level exit.
type Portal struct {
	Pos core.Vec2

	state     PortalState
	remaining int
	countdown int // starting value of the current countdown
}

// NewPortal creates an idle portal.
func NewPortal(pos core.IVec2) *Portal {
	return &Portal{Pos: pos.Vec2()}
}

// Update advances the countdown, or captures the player when it comes
// within cfg.TriggerDistance of an idle portal.
func (p *Portal) Update(pl *Player, cfg config.PortalConfig) {
	switch p.state {
	case PortalCounting:
		p.remaining--
		if p.remaining <= 0 {
			p.remaining = 0
			p.state = PortalReady
		}
	case PortalReady:
		if cfg.Rearm {
			p.state = PortalIdle
			pl.Hidden = false
			return
		}
		p.state = PortalSpent
	case PortalIdle:
		if pl.Pos.Distance(p.Pos) >= cfg.TriggerDistance {
			return
		}
		pl.Hidden = true
		p.countdown = cfg.CountdownTicks
		p.remaining = cfg.CountdownTicks
		p.state = PortalCounting
		if p.remaining <= 0 {
			p.state = PortalReady
		}
	}
}

// State returns the current phase.
func (p *Portal) State() PortalState {
	return p.state
}

// Remaining returns the ticks left in the countdown.
func (p *Portal) Remaining() int {
	return p.remaining
}

// ReadyToTransition is true only on the tick the countdown reaches zero.
func (p *Portal) ReadyToTransition() bool {
	return p.state == PortalReady
}

// Glow is the renderer's portal intensity in [0, 1]: 1 when the player is
// captured, fading to 0 as the countdown runs out.
func (p *Portal) Glow() float64 {
	if p.state != PortalCounting || p.countdown <= 0 {
		return 0
	}
	return float64(p.remaining) / float64(p.countdown)
}
