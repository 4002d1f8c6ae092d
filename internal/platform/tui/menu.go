package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorbubble/internal/core"
	"github.com/vovakirdan/colorbubble/internal/level"
	"github.com/vovakirdan/colorbubble/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	Index int
	Name  string
	Best  int64 // best ticks, 0 if never completed
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items         []MenuItem
	cursor        int
	width         int
	height        int
	step          time.Duration
	config        core.RuntimeConfig
	quitting      bool
	selected      *MenuItem // Set when user picks a level
	openRecords   bool      // True if user pressed Tab for records
	hueOffset     float64
	titleRendered string
}

// NewMenuModel creates a level picker for the given set. Best times come
// from store when it is not nil.
func NewMenuModel(set *level.Set, packID string, store *storage.Store, cfg core.RuntimeConfig, step time.Duration) MenuModel {
	items := make([]MenuItem, 0, set.Len())
	for i, name := range set.Names() {
		item := MenuItem{Index: i, Name: name}
		if store != nil {
			if best, err := store.BestTicks(packID, i); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	m := MenuModel{
		items:  items,
		cursor: core.Clamp(cfg.StartLevel, 0, max(len(items)-1, 0)),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		step:   step,
		config: cfg,
	}
	m.titleRendered = renderTitle("C O L O R B U B B L E", m.hueOffset)
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.shiftTitle(-1)
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
			m.shiftTitle(1)
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the campaign
		}

	case MenuActionRecords:
		m.openRecords = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *MenuModel) shiftTitle(dir float64) {
	m.hueOffset += dir * 0.07
	m.titleRendered = renderTitle("C O L O R B U B B L E", m.hueOffset)
}

// renderTitle colors each rune along the hue wheel, the way the player
// cycles through colors.
func renderTitle(title string, offset float64) string {
	var b strings.Builder
	runes := []rune(title)
	for i, r := range runes {
		hue := offset + float64(i)/float64(len(runes))
		c := core.HSV(hue, 0.8, 1)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(m.titleRendered, lipgloss.Width(m.titleRendered), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		best := "  --:--.--"
		if item.Best > 0 {
			best = fmt.Sprintf("%10s", formatTicks(uint64(item.Best), m.step)) //#nosec G115 -- positive tick count
		}

		line := fmt.Sprintf("%s%2d  %-22s %s", cursor, item.Index+1, item.Name, best)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.items) == 0 {
		b.WriteString(centerText("No levels found", m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Records  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsRecords returns true if user requested the records view.
func (m MenuModel) WantsRecords() bool {
	return m.openRecords
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	return centerStyled(text, len([]rune(text)), width)
}

// centerStyled centers a string whose printable width is known.
func centerStyled(text string, textWidth, width int) string {
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	StartLevel   int
	Config       core.RuntimeConfig
	WantsRecords bool
	Quit         bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(set *level.Set, packID string, store *storage.Store, cfg core.RuntimeConfig, step time.Duration) (MenuResult, error) {
	model := NewMenuModel(set, packID, store, cfg, step)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	switch {
	case m.WantsRecords():
		result.WantsRecords = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.StartLevel = m.Selected().Index
		result.Config.StartLevel = result.StartLevel
	default:
		result.Quit = true
	}

	return result, nil
}
