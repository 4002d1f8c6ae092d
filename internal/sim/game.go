package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
)

// Game owns one level's entities and the fixed-timestep accumulator.
type Game struct {
	level  Level
	tuning config.Tuning
	step   time.Duration

	player   *Player
	portal   *Portal
	bubble   *Bubble
	splashes []Splash

	accumulated time.Duration
	ticks       uint64
	bubbles     int  // bubbles spawned on this level
	reached     bool // portal became ready during the last Update
}

// NewGame creates a game on l with the player at its entry point.
func NewGame(l Level, tuning config.Tuning) *Game {
	return &Game{
		level:  l,
		tuning: tuning,
		step:   tuning.Timing.Timestep(),
		player: NewPlayer(l.EntryPoint(), tuning.Player),
		portal: NewPortal(l.Portal()),
	}
}

// SetIntent forwards a key transition to the player.
func (g *Game) SetIntent(i core.Intent, held bool) {
	g.player.SetIntent(i, held)
}

// Update feeds elapsed wall time in seconds. Negative values count as zero;
// seconds are rounded to whole nanoseconds.
func (g *Game) Update(seconds float64) []Splash {
	if seconds <= 0 || math.IsNaN(seconds) {
		return g.Advance(0)
	}
	return g.Advance(time.Duration(math.Round(seconds * float64(time.Second))))
}

// Advance adds elapsed to the accumulator and runs as many whole ticks as
// it covers. It returns every particle despawned during those ticks, in tick
// order. Afterwards 0 <= Accumulated() < Timestep().
func (g *Game) Advance(elapsed time.Duration) []Splash {
	g.reached = false
	if elapsed < 0 {
		elapsed = 0
	}
	if limit := g.tuning.Timing.MaxFrame(); limit > 0 && elapsed > limit {
		elapsed = limit
	}
	g.accumulated += elapsed

	var despawned []Splash
	for g.accumulated >= g.step {
		g.accumulated -= g.step
		despawned = g.tick(despawned)
	}
	return despawned
}

// Step runs exactly one tick, bypassing the accumulator.
func (g *Game) Step() []Splash {
	g.reached = false
	return g.tick(nil)
}

func (g *Game) tick(despawned []Splash) []Splash {
	g.ticks++

	spawned, splashes := g.player.Update(g.level, g.tuning.Player, g.splashes)
	g.splashes = splashes
	if spawned != nil {
		if g.bubble != nil {
			g.splashes = g.bubble.Pop(g.tuning.Bubble, g.splashes)
		}
		g.bubble = spawned
		g.bubbles++
	}

	if g.bubble != nil {
		g.splashes = g.bubble.Update(g.level, g.tuning.Bubble, g.splashes)
		if g.bubble.Dead {
			g.bubble = nil
		}
	}

	g.portal.Update(g.player, g.tuning.Portal)
	if g.portal.ReadyToTransition() {
		g.reached = true
	}

	kept := g.splashes[:0]
	for _, s := range g.splashes {
		if s.Update(g.level, g.tuning.Splash) {
			despawned = append(despawned, s)
			continue
		}
		kept = append(kept, s)
	}
	clear(g.splashes[len(kept):])
	g.splashes = kept

	return despawned
}

// ReadyToTransition reports whether the portal countdown reached zero during
// the last Update, Advance or Step call.
func (g *Game) ReadyToTransition() bool {
	return g.reached
}

// Accumulated returns the leftover time not yet consumed by a tick.
func (g *Game) Accumulated() time.Duration {
	return g.accumulated
}

// Timestep returns the fixed tick length.
func (g *Game) Timestep() time.Duration {
	return g.step
}

// Ticks returns the number of ticks run since the game was created.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// BubblesSpawned returns how many bubbles the player launched.
func (g *Game) BubblesSpawned() int {
	return g.bubbles
}

// Player returns the player. Callers outside the tick loop should treat it
// as read-only.
func (g *Game) Player() *Player {
	return g.player
}

// Portal returns the level exit.
func (g *Game) Portal() *Portal {
	return g.portal
}

// Bubble returns the live bubble, or nil.
func (g *Game) Bubble() *Bubble {
	return g.bubble
}

// Splashes returns the live particles. The slice is reused by the next tick.
func (g *Game) Splashes() []Splash {
	return g.splashes
}
