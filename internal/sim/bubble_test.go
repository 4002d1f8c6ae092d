package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/colorbubble/internal/core"
)

func TestBubblePopsOnGround(t *testing.T) {
	cfg := tuning().Bubble
	l := layout{
		w: 200, h: 200,
		solid:  []core.Rect{core.NewRect(0, 0, 200, 100)},
		entry:  core.IVec2{X: 10, Y: 150},
		portal: core.IVec2{X: 190, Y: 190},
	}.build(t)

	color := core.HSV(0.3, 1, 1)
	b := NewBubble(core.V2(100, 100), core.Vec2{}, color)
	splashes := b.Update(l, cfg, nil)

	if !b.Dead {
		t.Fatal("bubble above solid ground should pop")
	}
	if len(splashes) != cfg.BurstCount {
		t.Fatalf("burst has %d particles, expected %d", len(splashes), cfg.BurstCount)
	}

	var sum core.Vec2
	for i, s := range splashes {
		if s.Pos != (core.Vec2{X: 100, Y: 100}) {
			t.Errorf("particle %d at %v, expected the pre-pop position", i, s.Pos)
		}
		if s.Color != color {
			t.Errorf("particle %d color = %v, expected bubble color", i, s.Color)
		}
		if s.Age != 0 {
			t.Errorf("particle %d age = %d, expected 0", i, s.Age)
		}
		want := core.FromAngle(2 * math.Pi * float64(i) / float64(cfg.BurstCount)).Scale(cfg.BurstSpeed)
		if s.Vel.Distance(want) > 1e-12 {
			t.Errorf("particle %d vel = %v, expected %v", i, s.Vel, want)
		}
		sum = sum.Add(s.Vel)
	}
	if sum.Len() > 1e-9 {
		t.Errorf("burst velocities should cancel out, sum = %v", sum)
	}
}

func TestBubbleDrifts(t *testing.T) {
	cfg := tuning().Bubble
	l := floorLevel(t)
	b := NewBubble(core.V2(50, 150), core.V2(10, 0), core.White)

	splashes := b.Update(l, cfg, nil)
	if b.Dead || len(splashes) != 0 {
		t.Fatal("bubble in open air should not pop")
	}
	wantVel := core.V2(10, 0).Scale(cfg.Damping).Add(cfg.Gravity.V())
	if b.Vel != wantVel {
		t.Errorf("vel = %v, expected damping then gravity %v", b.Vel, wantVel)
	}
	if b.Pos != core.V2(50, 150).Add(wantVel) {
		t.Errorf("pos = %v", b.Pos)
	}
}

func TestBubblePopIdempotent(t *testing.T) {
	cfg := tuning().Bubble
	b := NewBubble(core.V2(20, 20), core.Vec2{}, core.White)

	splashes := b.Pop(cfg, nil)
	if len(splashes) != cfg.BurstCount {
		t.Fatalf("first pop emitted %d particles", len(splashes))
	}
	splashes = b.Pop(cfg, splashes)
	if len(splashes) != cfg.BurstCount {
		t.Errorf("second pop emitted %d more particles, expected none", len(splashes)-cfg.BurstCount)
	}

	// A dead bubble neither moves nor pops again on update.
	l := floorLevel(t)
	pos := b.Pos
	splashes = b.Update(l, cfg, splashes)
	if len(splashes) != cfg.BurstCount || b.Pos != pos {
		t.Error("dead bubble should ignore Update")
	}
}

func TestBubbleOutOfBoundsDoesNotPop(t *testing.T) {
	cfg := tuning().Bubble
	l := floorLevel(t)
	b := NewBubble(core.V2(199, 150), core.V2(10, 0), core.White)
	b.Update(l, cfg, nil)
	if b.Dead {
		t.Error("leaving the level is not a collision")
	}
}
