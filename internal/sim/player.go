package sim

import (
	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
)

// Player is the controllable character.
type Player struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Hue    float64 // cosmetic, in [0, 1)
	Hidden bool    // set by the portal; hides the player but keeps physics running
	Deaths int

	onGround    bool
	facingRight bool
	intents     core.IntentState
}

// NewPlayer places a player at the level entry point.
func NewPlayer(entry core.IVec2, cfg config.PlayerConfig) *Player {
	return &Player{
		Pos:         entry.Vec2(),
		Vel:         cfg.InitialVelocity.V(),
		facingRight: true,
	}
}

// SetIntent records a key transition. Pressing left or right also turns the
// player. The flag is read at the next tick.
func (p *Player) SetIntent(i core.Intent, held bool) {
	if !i.Valid() {
		return
	}
	p.intents.Set(i, held)
	if held {
		switch i {
		case core.IntentLeft:
			p.facingRight = false
		case core.IntentRight:
			p.facingRight = true
		}
	}
}

// ReleaseAll drops every held intent without producing rising edges later.
func (p *Player) ReleaseAll() {
	p.intents.Clear()
}

// OnGround reports whether the last tick ended in contact with solid geometry.
func (p *Player) OnGround() bool { return p.onGround }

// FacingRight reports the last horizontal direction pressed.
func (p *Player) FacingRight() bool { return p.facingRight }

// Color is the player's current tint, also used for its bubbles.
func (p *Player) Color() core.RGBA {
	return core.HSV(p.Hue, 1, 1)
}

func (p *Player) facing() float64 {
	if p.facingRight {
		return 1
	}
	return -1
}

// Update runs one tick of player physics. Death bursts are appended to
// splashes. The returned bubble, if any, was spawned this tick and should
// replace the current one.
func (p *Player) Update(l Level, cfg config.PlayerConfig, splashes []Splash) (*Bubble, []Splash) {
	p.Hue += cfg.HueSpeed
	if p.Hue >= 1 {
		p.Hue -= 1
	}

	switch {
	case p.intents.Held(core.IntentLeft):
		p.Vel.X = -cfg.SpeedX
	case p.intents.Held(core.IntentRight):
		p.Vel.X = cfg.SpeedX
	default:
		p.Vel.X *= cfg.DampX
	}

	if p.intents.Rising(core.IntentJump) && p.onGround {
		p.Vel.Y = cfg.JumpY
	} else {
		p.Vel.Y *= cfg.DampY
	}

	var spawned *Bubble
	if p.intents.Rising(core.IntentBubble) {
		dir := core.V2(p.facing(), 1)
		spawned = NewBubble(
			p.Pos.Add(cfg.BubbleSpawnOffset.V().Mul(dir)),
			cfg.BubbleLaunchVelocity.V().Mul(dir),
			p.Color(),
		)
	}

	p.Vel = p.Vel.Add(cfg.Gravity.V())
	next := p.Pos.Add(p.Vel)

	if l.IsHit(next.Trunc()) {
		p.Vel = core.Vec2{}
		if cfg.PreserveBrokenCollision {
			// Takes the new X but not the new Y, even when X is what collided.
			p.Pos.X = next.X
		}
		p.onGround = true
	} else {
		p.Pos = next
		p.onGround = false
	}

	if l.IsDeath(next.Trunc()) {
		splashes = SpawnBurst(splashes, p.Pos, cfg.DeathBurstRadius, cfg.DeathBurstSpeed, p.Color(), cfg.DeathBurstCount)
		p.Pos = l.EntryPoint().Vec2()
		p.Vel = core.Vec2{}
		p.Deaths++
	}

	p.intents.Shift()
	return spawned, splashes
}
