package sim

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestDeltaTimer(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := NewDeltaTimer(clock.Now)

	if got := timer.Next(); got != 0 {
		t.Errorf("first Next() = %v, expected 0", got)
	}

	clock.Advance(16 * time.Millisecond)
	if got := timer.Next(); got != 0.016 {
		t.Errorf("Next() = %v, expected 0.016", got)
	}

	clock.Advance(-time.Second)
	if got := timer.Next(); got != 0 {
		t.Errorf("Next() after a backwards step = %v, expected 0", got)
	}

	clock.Advance(time.Second)
	timer.Reset()
	if got := timer.Next(); got != 0 {
		t.Errorf("Next() after Reset() = %v, expected 0", got)
	}
}

func TestDeltaTimerFeedsGame(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	timer := NewDeltaTimer(clock.Now)
	g := NewGame(floorLevel(t), tuning())

	g.Update(timer.Next())
	for i := 0; i < 10; i++ {
		clock.Advance(g.Timestep())
		g.Update(timer.Next())
	}
	if g.Ticks() != 10 {
		t.Errorf("Ticks() = %d, expected 10", g.Ticks())
	}
}

func TestDeltaTimerDefaultClock(t *testing.T) {
	timer := NewDeltaTimer(nil)
	timer.Next()
	if got := timer.Next(); got < 0 {
		t.Errorf("Next() = %v, expected non-negative", got)
	}
}
