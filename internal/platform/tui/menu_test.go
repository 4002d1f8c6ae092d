package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
	"github.com/vovakirdan/colorbubble/internal/storage"
)

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuNavigation(t *testing.T) {
	step := config.DefaultTuning().Timing.Timestep()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	m := NewMenuModel(portalSet(t), "test", nil, cfg, step)

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("cursor = %d after moving past the end, want 1", m.cursor)
	}

	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("select should end the menu program")
	}
	if sel := m.Selected(); sel == nil || sel.Index != 1 || sel.Name != "two" {
		t.Errorf("Selected() = %+v, want level two", sel)
	}
}

func TestMenuStartsAtConfiguredLevel(t *testing.T) {
	step := config.DefaultTuning().Timing.Timestep()
	m := NewMenuModel(portalSet(t), "test", nil, core.RuntimeConfig{ScreenW: 80, StartLevel: 1}, step)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}
	m = NewMenuModel(portalSet(t), "test", nil, core.RuntimeConfig{ScreenW: 80, StartLevel: 9}, step)
	if m.cursor != 1 {
		t.Errorf("cursor = %d for out-of-range start, want last level", m.cursor)
	}
}

func TestMenuRecordsAndQuit(t *testing.T) {
	step := config.DefaultTuning().Timing.Timestep()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}

	m := NewMenuModel(portalSet(t), "test", nil, cfg, step)
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsRecords() {
		t.Error("tab did not open records")
	}

	m = NewMenuModel(portalSet(t), "test", nil, cfg, step)
	m, _ = updateMenu(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("quitting menu still renders")
	}
}

func TestMenuShowsBestTimes(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{PackID: "test", LevelIndex: 0, LevelName: "one", Ticks: 60}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	step := config.DefaultTuning().Timing.Timestep()
	m := NewMenuModel(portalSet(t), "test", store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, step)

	if m.items[0].Best != 60 || m.items[1].Best != 0 {
		t.Errorf("best ticks = %d, %d; want 60, 0", m.items[0].Best, m.items[1].Best)
	}

	view := m.View()
	for _, want := range []string{"one", "two", "0:01.00", "--:--.--"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuResize(t *testing.T) {
	step := config.DefaultTuning().Timing.Timestep()
	m := NewMenuModel(portalSet(t), "test", nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, step)
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if cfg := m.Config(); cfg.ScreenW != 100 || cfg.ScreenH != 30 {
		t.Errorf("Config() = %+v, want 100x30", cfg)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() should not trim, got %q", got)
	}
}
