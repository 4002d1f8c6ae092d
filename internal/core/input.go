package core

// Intent represents a held player intent, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Intent int

const (
	IntentLeft   Intent = iota // A, Left arrow - run left
	IntentRight                // D, Right arrow - run right
	IntentJump                 // Space, W, Up - jump
	IntentBubble               // E, Q, Shift - spawn a bubble
	intentCount
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentJump:
		return "Jump"
	case IntentBubble:
		return "Bubble"
	default:
		return "Unknown"
	}
}

// AllIntents returns every intent in declaration order.
func AllIntents() []Intent {
	return []Intent{IntentLeft, IntentRight, IntentJump, IntentBubble}
}

// Valid reports whether i names a known intent.
func (i Intent) Valid() bool {
	return i >= 0 && i < intentCount
}

// Edge is a held flag paired with its value on the previous tick.
type Edge struct {
	Held bool
	Prev bool
}

// Rising reports a press this tick that was not held last tick.
func (e Edge) Rising() bool {
	return e.Held && !e.Prev
}

// IntentState holds every intent flag with its previous-tick shadow.
// Key events write Held at any time; Shift copies Held into Prev once per tick.
type IntentState struct {
	edges [intentCount]Edge
}

// Set marks an intent as held or released. Unknown intents are ignored.
func (s *IntentState) Set(i Intent, held bool) {
	if !i.Valid() {
		return
	}
	s.edges[i].Held = held
}

// Held returns true if the intent is currently held.
func (s *IntentState) Held(i Intent) bool {
	if !i.Valid() {
		return false
	}
	return s.edges[i].Held
}

// Rising returns true if the intent was pressed this tick but not last tick.
func (s *IntentState) Rising(i Intent) bool {
	if !i.Valid() {
		return false
	}
	return s.edges[i].Rising()
}

// Shift copies the current flags into the previous-tick shadows.
func (s *IntentState) Shift() {
	for i := range s.edges {
		s.edges[i].Prev = s.edges[i].Held
	}
}

// Clear releases every intent, including the shadows.
func (s *IntentState) Clear() {
	s.edges = [intentCount]Edge{}
}
