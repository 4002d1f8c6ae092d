package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
)

func TestSpawnBurstRing(t *testing.T) {
	center := core.V2(10, 20)
	out := SpawnBurst(nil, center, 2, 3, core.White, 4)
	if len(out) != 4 {
		t.Fatalf("SpawnBurst() returned %d particles, expected 4", len(out))
	}

	wantPos := []core.Vec2{{X: 12, Y: 20}, {X: 10, Y: 22}, {X: 8, Y: 20}, {X: 10, Y: 18}}
	wantVel := []core.Vec2{{X: 3, Y: 0}, {X: 0, Y: 3}, {X: -3, Y: 0}, {X: 0, Y: -3}}
	for i, s := range out {
		if s.Pos.Distance(wantPos[i]) > 1e-9 {
			t.Errorf("particle %d pos = %v, expected %v", i, s.Pos, wantPos[i])
		}
		if s.Vel.Distance(wantVel[i]) > 1e-9 {
			t.Errorf("particle %d vel = %v, expected %v", i, s.Vel, wantVel[i])
		}
	}
}

func TestSpawnBurstAppends(t *testing.T) {
	dst := []Splash{{Age: 7}}
	out := SpawnBurst(dst, core.Vec2{}, 0, 1, core.White, 3)
	if len(out) != 4 || out[0].Age != 7 {
		t.Errorf("SpawnBurst() should append after existing particles, got %d", len(out))
	}
	if n := len(SpawnBurst(nil, core.Vec2{}, 0, 1, core.White, 0)); n != 0 {
		t.Errorf("zero count burst returned %d particles", n)
	}
}

func TestSplashExpiresOnMaxAge(t *testing.T) {
	l := floorLevel(t)
	cfg := config.SplashConfig{Gravity: config.Vec{}, Damping: 1, MaxAge: 3}
	s := Splash{Pos: core.V2(100, 150)}

	for tick := 1; tick <= 3; tick++ {
		if s.Update(l, cfg) {
			t.Fatalf("particle despawned at age %d, expected to live until it exceeds 3", s.Age)
		}
	}
	if !s.Update(l, cfg) {
		t.Errorf("particle with age %d should despawn", s.Age)
	}
}

func TestSplashDespawnsOnSolid(t *testing.T) {
	l := floorLevel(t)
	cfg := tuning().Splash
	s := Splash{Pos: core.V2(100, 50.5), Vel: core.V2(0, -1)}
	if !s.Update(l, cfg) {
		t.Errorf("particle entering the floor should despawn, pos = %v", s.Pos)
	}
	if s.Age != 1 {
		t.Errorf("Age = %d, expected 1", s.Age)
	}
}

func TestSplashMotion(t *testing.T) {
	l := floorLevel(t)
	cfg := tuning().Splash
	s := Splash{Pos: core.V2(100, 150), Vel: core.V2(1, 1)}
	s.Update(l, cfg)

	want := core.V2(1, 1).Scale(cfg.Damping).Add(cfg.Gravity.V())
	if s.Vel != want {
		t.Errorf("vel = %v, expected %v", s.Vel, want)
	}
	if math.Abs(s.Pos.X-(100+want.X)) > 1e-12 || math.Abs(s.Pos.Y-(150+want.Y)) > 1e-12 {
		t.Errorf("pos = %v", s.Pos)
	}
}
