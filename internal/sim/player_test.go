package sim

import (
	"testing"

	"github.com/vovakirdan/colorbubble/internal/core"
)

// settle runs one tick so a player spawned on the floor becomes grounded.
func settle(t *testing.T, p *Player, l Level) {
	t.Helper()
	cfg := tuning().Player
	p.Update(l, cfg, nil)
	if !p.OnGround() {
		t.Fatalf("player should land on the floor, pos=%v vel=%v", p.Pos, p.Vel)
	}
}

func TestPlayerLandsOnFloor(t *testing.T) {
	l := floorLevel(t)
	p := NewPlayer(l.EntryPoint(), tuning().Player)
	if p.Vel != (core.Vec2{X: 0, Y: -1}) {
		t.Errorf("initial velocity = %v, expected (0,-1)", p.Vel)
	}

	settle(t, p, l)
	if p.Pos != (core.Vec2{X: 100, Y: 50}) {
		t.Errorf("pos = %v, expected to stay at the entry point", p.Pos)
	}
	if p.Vel != (core.Vec2{}) {
		t.Errorf("vel = %v, expected zero after landing", p.Vel)
	}
}

func TestPlayerJumpFromGround(t *testing.T) {
	cfg := tuning().Player
	l := floorLevel(t)
	p := NewPlayer(l.EntryPoint(), cfg)
	settle(t, p, l)

	p.SetIntent(core.IntentJump, true)
	p.Update(l, cfg, nil)

	if want := cfg.JumpY + cfg.Gravity.Y; p.Vel.Y != want {
		t.Errorf("Vel.Y = %v, expected jump impulse plus gravity %v", p.Vel.Y, want)
	}
	if p.OnGround() {
		t.Error("player should be airborne after jumping")
	}

	// Holding jump is not a new rising edge.
	vy := p.Vel.Y
	p.Update(l, cfg, nil)
	if want := vy*cfg.DampY + cfg.Gravity.Y; p.Vel.Y != want {
		t.Errorf("held jump: Vel.Y = %v, expected %v", p.Vel.Y, want)
	}
}

func TestPlayerJumpIgnoredInAir(t *testing.T) {
	cfg := tuning().Player
	l := layout{
		w: 200, h: 200,
		solid:  []core.Rect{core.NewRect(0, 0, 200, 50)},
		entry:  core.IVec2{X: 100, Y: 150},
		portal: core.IVec2{X: 190, Y: 190},
	}.build(t)
	p := NewPlayer(l.EntryPoint(), cfg)
	p.Update(l, cfg, nil)
	if p.OnGround() {
		t.Fatal("player should be falling")
	}

	vy := p.Vel.Y
	p.SetIntent(core.IntentJump, true)
	p.Update(l, cfg, nil)
	if want := vy*cfg.DampY + cfg.Gravity.Y; p.Vel.Y != want {
		t.Errorf("Vel.Y = %v, expected only damping and gravity %v", p.Vel.Y, want)
	}
}

func TestPlayerHorizontalSnapAndDamp(t *testing.T) {
	cfg := tuning().Player
	l := floorLevel(t)
	p := NewPlayer(core.IVec2{X: 100, Y: 150}, cfg)

	p.SetIntent(core.IntentRight, true)
	p.Update(l, cfg, nil)
	if p.Vel.X != cfg.SpeedX {
		t.Errorf("Vel.X = %v, expected %v", p.Vel.X, cfg.SpeedX)
	}
	if !p.FacingRight() {
		t.Error("player should face right")
	}

	p.SetIntent(core.IntentRight, false)
	p.Update(l, cfg, nil)
	if want := cfg.SpeedX * cfg.DampX; p.Vel.X != want {
		t.Errorf("released: Vel.X = %v, expected %v", p.Vel.X, want)
	}

	p.SetIntent(core.IntentLeft, true)
	p.Update(l, cfg, nil)
	if p.Vel.X != -cfg.SpeedX || p.FacingRight() {
		t.Errorf("left: Vel.X = %v facingRight=%v", p.Vel.X, p.FacingRight())
	}

	// Left wins when both are held; facing follows the last press.
	p.SetIntent(core.IntentRight, true)
	p.Update(l, cfg, nil)
	if p.Vel.X != -cfg.SpeedX {
		t.Errorf("both held: Vel.X = %v, expected %v", p.Vel.X, -cfg.SpeedX)
	}
	if !p.FacingRight() {
		t.Error("last press was right")
	}
}

func TestPlayerBrokenCollisionResponse(t *testing.T) {
	tests := []struct {
		name     string
		preserve bool
		wantX    float64
	}{
		{"preserved", true, 105.5},
		{"corrected", false, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tuning().Player
			cfg.PreserveBrokenCollision = tc.preserve
			l := floorLevel(t)
			p := NewPlayer(l.EntryPoint(), cfg)
			settle(t, p, l)

			p.SetIntent(core.IntentRight, true)
			p.Update(l, cfg, nil)
			if p.Pos != (core.Vec2{X: tc.wantX, Y: 50}) {
				t.Errorf("pos = %v, expected (%v, 50)", p.Pos, tc.wantX)
			}
			if p.Vel != (core.Vec2{}) || !p.OnGround() {
				t.Errorf("vel = %v onGround = %v, expected zero and grounded", p.Vel, p.OnGround())
			}
		})
	}
}

func TestPlayerDeathRespawns(t *testing.T) {
	cfg := tuning().Player
	l := layout{
		w: 100, h: 100,
		hazard: []core.Rect{core.NewRect(0, 0, 100, 10)},
		entry:  core.IVec2{X: 50, Y: 12},
		portal: core.IVec2{X: 90, Y: 90},
	}.build(t)
	p := NewPlayer(l.EntryPoint(), cfg)

	_, splashes := p.Update(l, cfg, nil)

	if p.Deaths != 1 {
		t.Fatalf("Deaths = %d, expected 1", p.Deaths)
	}
	if p.Pos != (core.Vec2{X: 50, Y: 12}) || p.Vel != (core.Vec2{}) {
		t.Errorf("after death pos=%v vel=%v, expected entry point at rest", p.Pos, p.Vel)
	}
	if len(splashes) != cfg.DeathBurstCount {
		t.Fatalf("death burst has %d particles, expected %d", len(splashes), cfg.DeathBurstCount)
	}
	center := core.V2(50, 12-2.1)
	for i, s := range splashes {
		if d := s.Pos.Distance(center); d < cfg.DeathBurstRadius-1e-9 || d > cfg.DeathBurstRadius+1e-9 {
			t.Errorf("particle %d at distance %v, expected ring radius %v", i, d, cfg.DeathBurstRadius)
		}
	}
}

func TestPlayerDiesOutOfBounds(t *testing.T) {
	tests := []struct {
		name  string
		entry core.IVec2
		left  bool
	}{
		{"below", core.IVec2{X: 50, Y: 1}, false},
		{"both negative", core.IVec2{X: 2, Y: 1}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tuning().Player
			l := layout{w: 100, h: 100, entry: tc.entry, portal: core.IVec2{X: 90, Y: 90}}.build(t)
			p := NewPlayer(l.EntryPoint(), cfg)
			if tc.left {
				p.SetIntent(core.IntentLeft, true)
			}
			p.Update(l, cfg, nil)
			if p.Deaths != 1 {
				t.Errorf("Deaths = %d, expected 1", p.Deaths)
			}
			if p.Pos != tc.entry.Vec2() {
				t.Errorf("pos = %v, expected respawn at %v", p.Pos, tc.entry)
			}
		})
	}
}

func TestPlayerSpawnsBubbleOnRisingEdge(t *testing.T) {
	cfg := tuning().Player
	l := floorLevel(t)
	p := NewPlayer(l.EntryPoint(), cfg)
	settle(t, p, l)

	p.SetIntent(core.IntentBubble, true)
	b, _ := p.Update(l, cfg, nil)
	if b == nil {
		t.Fatal("bubble intent rising edge should spawn a bubble")
	}
	if b.Pos != (core.Vec2{X: 106, Y: 50}) {
		t.Errorf("bubble pos = %v, expected (106,50)", b.Pos)
	}
	if b.Vel != (core.Vec2{X: 10, Y: 0}) {
		t.Errorf("bubble vel = %v, expected (10,0)", b.Vel)
	}
	if b.Color != p.Color() {
		t.Errorf("bubble color = %v, expected player color %v", b.Color, p.Color())
	}

	if again, _ := p.Update(l, cfg, nil); again != nil {
		t.Error("holding the bubble key should not spawn again")
	}

	p.SetIntent(core.IntentBubble, false)
	p.Update(l, cfg, nil)
	p.SetIntent(core.IntentLeft, true)
	p.SetIntent(core.IntentBubble, true)
	start := p.Pos
	b, _ = p.Update(l, cfg, nil)
	if b == nil {
		t.Fatal("second press should spawn a bubble")
	}
	if b.Pos != start.Add(core.V2(-6, 0)) || b.Vel != (core.Vec2{X: -10, Y: 0}) {
		t.Errorf("left bubble pos=%v vel=%v", b.Pos, b.Vel)
	}
}

func TestPlayerHueWraps(t *testing.T) {
	cfg := tuning().Player
	l := floorLevel(t)
	p := NewPlayer(l.EntryPoint(), cfg)
	p.Hue = 0.995
	p.Update(l, cfg, nil)
	if p.Hue < 0 || p.Hue >= 1 {
		t.Errorf("Hue = %v, expected wrapped into [0,1)", p.Hue)
	}
	if p.Hue > 0.01 {
		t.Errorf("Hue = %v, expected about 0.005", p.Hue)
	}
}

func TestPlayerIgnoresUnknownIntent(t *testing.T) {
	cfg := tuning().Player
	l := floorLevel(t)
	p := NewPlayer(l.EntryPoint(), cfg)
	p.SetIntent(core.Intent(42), true)
	p.SetIntent(core.Intent(-1), true)
	settle(t, p, l)
	if p.Vel != (core.Vec2{}) {
		t.Errorf("unknown intents changed velocity: %v", p.Vel)
	}
}
