package sim

import "time"

// DeltaTimer turns wall-clock frame times into elapsed seconds.
type DeltaTimer struct {
	now     func() time.Time
	last    time.Time
	started bool
}

// NewDeltaTimer returns a timer reading clock, or time.Now when clock is nil.
func NewDeltaTimer(clock func() time.Time) *DeltaTimer {
	if clock == nil {
		clock = time.Now
	}
	return &DeltaTimer{now: clock}
}

// Next returns the seconds since the previous call. The first call returns 0,
// and a clock that steps backwards yields 0 rather than a negative value.
func (t *DeltaTimer) Next() float64 {
	now := t.now()
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}
	elapsed := now.Sub(t.last)
	t.last = now
	if elapsed < 0 {
		return 0
	}
	return elapsed.Seconds()
}

// Reset forgets the previous reading, so the next call returns 0 again.
// Used after a pause so the paused time does not flood the accumulator.
func (t *DeltaTimer) Reset() {
	t.started = false
}
