package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorbubble/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapIntent(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Intent
		wantOK bool
	}{
		{"a", runeKey("a"), core.IntentLeft, true},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.IntentLeft, true},
		{"d", runeKey("d"), core.IntentRight, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.IntentRight, true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.IntentJump, true},
		{"w", runeKey("w"), core.IntentJump, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.IntentJump, true},
		{"e", runeKey("e"), core.IntentBubble, true},
		{"q", runeKey("q"), core.IntentBubble, true},
		{"shift+left", tea.KeyMsg{Type: tea.KeyShiftLeft}, core.IntentBubble, true},
		{"restart is not an intent", runeKey("r"), 0, false},
		{"esc is not an intent", tea.KeyMsg{Type: tea.KeyEsc}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := keys.Intent(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("Intent(%q) ok = %v, want %v", tt.msg.String(), ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Intent(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionRecords},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHelpBindingsCoverIntents(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("ShortHelp() is empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 8 {
		t.Errorf("FullHelp() lists %d bindings, want 8", total)
	}
}
