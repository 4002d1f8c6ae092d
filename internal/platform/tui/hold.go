package tui

import (
	"time"

	"github.com/vovakirdan/colorbubble/internal/core"
)

// Hold windows tuned for typical terminal autorepeat: a first repeat after
// roughly 250-500ms, then one every 30-50ms.
const (
	DefaultFirstHold  = 450 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

// HoldTracker turns key presses into held intents.
//
// Terminals report presses (and autorepeats) but never releases, so an
// intent stays held until no press has arrived for a while. The first press
// of a hold gets a longer window to cover the autorepeat delay.
type HoldTracker struct {
	first  time.Duration
	repeat time.Duration
	until  map[core.Intent]time.Time
}

// NewHoldTracker creates a tracker. Non-positive windows use the defaults.
func NewHoldTracker(first, repeat time.Duration) *HoldTracker {
	if first <= 0 {
		first = DefaultFirstHold
	}
	if repeat <= 0 {
		repeat = DefaultRepeatHold
	}
	return &HoldTracker{
		first:  first,
		repeat: repeat,
		until:  make(map[core.Intent]time.Time),
	}
}

// Press records a key event at now and reports whether the intent was
// not held before.
func (h *HoldTracker) Press(i core.Intent, now time.Time) bool {
	if !i.Valid() {
		return false
	}
	_, held := h.until[i]
	window := h.repeat
	if !held {
		window = h.first
	}
	h.until[i] = now.Add(window)
	return !held
}

// Release drops an intent immediately. Returns false if it was not held.
func (h *HoldTracker) Release(i core.Intent) bool {
	if _, held := h.until[i]; !held {
		return false
	}
	delete(h.until, i)
	return true
}

// Expire releases every intent whose window ended before now and returns
// them in declaration order.
func (h *HoldTracker) Expire(now time.Time) []core.Intent {
	var released []core.Intent
	for _, i := range core.AllIntents() {
		deadline, held := h.until[i]
		if held && !now.Before(deadline) {
			delete(h.until, i)
			released = append(released, i)
		}
	}
	return released
}

// Held reports whether the intent is currently held.
func (h *HoldTracker) Held(i core.Intent) bool {
	_, held := h.until[i]
	return held
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
