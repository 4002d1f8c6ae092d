package tui

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/colorbubble/internal/core"
)

func TestHoldTrackerFirstPressWindow(t *testing.T) {
	h := NewHoldTracker(0, 0)
	t0 := time.Unix(100, 0)

	if !h.Press(core.IntentRight, t0) {
		t.Fatal("first press should report a new hold")
	}
	if h.Press(core.IntentRight, t0.Add(10*time.Millisecond)) {
		t.Error("repeat press should not report a new hold")
	}

	// The repeat press shortened the window to DefaultRepeatHold.
	if got := h.Expire(t0.Add(10*time.Millisecond + DefaultRepeatHold - time.Millisecond)); len(got) != 0 {
		t.Errorf("expired too early: %v", got)
	}
	got := h.Expire(t0.Add(10*time.Millisecond + DefaultRepeatHold))
	if !slices.Equal(got, []core.Intent{core.IntentRight}) {
		t.Errorf("Expire() = %v, want [right]", got)
	}
	if h.Held(core.IntentRight) {
		t.Error("intent still held after expiry")
	}
}

func TestHoldTrackerSinglePressLastsFirstWindow(t *testing.T) {
	h := NewHoldTracker(0, 0)
	t0 := time.Unix(100, 0)
	h.Press(core.IntentJump, t0)

	if got := h.Expire(t0.Add(DefaultFirstHold - time.Millisecond)); len(got) != 0 {
		t.Errorf("expired before the first window: %v", got)
	}
	if got := h.Expire(t0.Add(DefaultFirstHold)); len(got) != 1 {
		t.Errorf("Expire() = %v, want one intent", got)
	}
}

func TestHoldTrackerExpireOrder(t *testing.T) {
	h := NewHoldTracker(time.Second, time.Second)
	t0 := time.Unix(0, 0)
	h.Press(core.IntentBubble, t0)
	h.Press(core.IntentLeft, t0)
	h.Press(core.IntentJump, t0)

	got := h.Expire(t0.Add(time.Second))
	want := []core.Intent{core.IntentLeft, core.IntentJump, core.IntentBubble}
	if !slices.Equal(got, want) {
		t.Errorf("Expire() = %v, want %v", got, want)
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(0, 0)
	t0 := time.Unix(0, 0)

	if h.Release(core.IntentLeft) {
		t.Error("Release() of an unheld intent should be false")
	}
	h.Press(core.IntentLeft, t0)
	if !h.Release(core.IntentLeft) {
		t.Error("Release() of a held intent should be true")
	}
	if !h.Press(core.IntentLeft, t0) {
		t.Error("press after release should start a new hold")
	}

	h.Press(core.IntentRight, t0)
	h.Reset()
	if h.Held(core.IntentLeft) || h.Held(core.IntentRight) {
		t.Error("Reset() left intents held")
	}
}

func TestHoldTrackerIgnoresInvalidIntent(t *testing.T) {
	h := NewHoldTracker(0, 0)
	if h.Press(core.Intent(99), time.Unix(0, 0)) {
		t.Error("invalid intent should not be held")
	}
}
