package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorbubble/internal/config"
	"github.com/vovakirdan/colorbubble/internal/core"
	"github.com/vovakirdan/colorbubble/internal/level"
	"github.com/vovakirdan/colorbubble/internal/sim"
	"github.com/vovakirdan/colorbubble/internal/storage"
)

// DefaultScale is the number of level pixels per half-block pixel.
const DefaultScale = 3

// Options configures a game model.
type Options struct {
	Levels  *level.Set
	PackID  string
	Tuning  config.Tuning
	Runtime core.RuntimeConfig
	Store   *storage.Store // optional
	Player  string         // name recorded with runs, "local" by default
	Logger  *log.Logger    // optional
	Scale   int            // level pixels per virtual pixel, DefaultScale if 0
	Clock   func() time.Time

	// ExitToMenu makes the quit key leave to the session menu instead of
	// ending the program.
	ExitToMenu bool
}

// Model is the Bubble Tea model for playing a campaign.
type Model struct {
	id       uint64
	campaign *sim.Campaign
	renderer *Renderer
	screen   *core.Screen
	timer    *sim.DeltaTimer
	holds    *HoldTracker
	keys     KeyMap
	help     help.Model
	store    *storage.Store
	logger   *log.Logger
	clock    func() time.Time

	packID string
	player string
	config core.RuntimeConfig
	step   time.Duration
	best   int64 // best ticks on the current level, 0 if none

	paused     bool
	quitting   bool
	backToMenu bool
	exitToMenu bool
}

// NewModel creates a new Bubble Tea model for the given campaign options.
func NewModel(opts Options) (Model, error) {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}

	campaign, err := sim.NewCampaign(opts.Levels, opts.Tuning, opts.Runtime.StartLevel, opts.Logger)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := Model{
		id:         nextModelID(),
		campaign:   campaign,
		renderer:   NewRenderer(opts.Scale),
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		timer:      sim.NewDeltaTimer(opts.Clock),
		holds:      NewHoldTracker(0, 0),
		keys:       DefaultKeyMap(),
		help:       h,
		store:      opts.Store,
		logger:     opts.Logger,
		clock:      opts.Clock,
		packID:     opts.PackID,
		player:     opts.Player,
		config:     opts.Runtime,
		step:       opts.Tuning.Timing.Timestep(),
		exitToMenu: opts.ExitToMenu,
	}
	m.enterLevel()
	return m, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.timer.Next()
	return frameCmd(m.config.FrameRate, m.id)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		if msg.Model != m.id {
			// A frame from a model that was replaced in this program.
			return m, nil
		}
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.exitToMenu {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.releaseAll()
		if !m.paused {
			// Paused wall time must not reach the accumulator.
			m.timer.Reset()
			m.timer.Next()
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if !m.campaign.Finished() {
			m.campaign.Restart()
			m.releaseAll()
		}
		return m, nil
	}

	if m.paused || m.campaign.Finished() {
		return m, nil
	}
	if intent, ok := m.keys.Intent(msg); ok {
		if m.holds.Press(intent, m.clock()) {
			m.campaign.SetIntent(intent, true)
		}
	}
	return m, nil
}

// handleFrame feeds elapsed wall time into the campaign.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}
	if m.paused || m.campaign.Finished() {
		return m, frameCmd(m.config.FrameRate, m.id)
	}

	for _, intent := range m.holds.Expire(m.clock()) {
		m.campaign.SetIntent(intent, false)
	}

	despawned, completed := m.campaign.Update(m.timer.Next())
	m.renderer.Paint(despawned)

	if completed != nil {
		m.recordRun(*completed)
		if !m.campaign.Finished() {
			m.enterLevel()
			// The fresh player starts with no intents; carry over held keys.
			for _, intent := range core.AllIntents() {
				if m.holds.Held(intent) {
					m.campaign.SetIntent(intent, true)
				}
			}
		}
	}

	return m, frameCmd(m.config.FrameRate, m.id)
}

func (m *Model) enterLevel() {
	m.renderer.SetLevel(m.campaign.Level())
	m.best = 0
	if m.store != nil {
		if best, err := m.store.BestTicks(m.packID, m.campaign.Index()); err == nil {
			m.best = best
		}
	}
}

func (m *Model) releaseAll() {
	for _, intent := range core.AllIntents() {
		if m.holds.Release(intent) {
			m.campaign.SetIntent(intent, false)
		}
	}
}

// recordRun saves a completed level. Storage is best effort.
func (m *Model) recordRun(stats sim.LevelStats) {
	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		PackID:     m.packID,
		LevelIndex: stats.Index,
		LevelName:  stats.Level,
		Player:     m.player,
		Ticks:      int64(stats.Ticks), //#nosec G115 -- tick counts stay far below MaxInt64
		Deaths:     stats.Deaths,
		Bubbles:    stats.Bubbles,
	})
	if err != nil {
		m.logger.Warn("could not save run", "level", stats.Level, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.screen.Clear()
	game := m.campaign.Game()
	m.renderer.Draw(m.screen, 1, m.screen.Height()-1, game.Snapshot())
	m.drawHUD(game)

	switch {
	case m.campaign.Finished():
		m.drawSummary()
	case m.paused:
		m.drawBanner("PAUSED", "p to resume")
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func (m Model) drawHUD(game *sim.Game) {
	lvl := m.campaign.Level()
	hud := fmt.Sprintf(" %d/%d %s  deaths %d  bubbles %d  time %s",
		m.campaign.Index()+1, m.campaign.Len(), lvl.Name(),
		game.Player().Deaths, game.BubblesSpawned(),
		formatTicks(game.Ticks(), m.step),
	)
	if m.best > 0 {
		hud += "  best " + formatTicks(uint64(m.best), m.step) //#nosec G115 -- best is a positive tick count
	}
	m.screen.DrawText(0, 0, hud)
}

func (m Model) drawBanner(title, subtitle string) {
	w := max(len(title), len(subtitle)) + 6
	box := core.NewRect((m.screen.Width()-w)/2, m.screen.Height()/2-2, w, 4)
	m.screen.FillRect(box, core.Cell{Rune: ' '})
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, title)
	m.screen.DrawTextCentered(box.Y+2, subtitle)
}

func (m Model) drawSummary() {
	done := m.campaign.Completed()
	lines := make([]string, 0, len(done)+1)
	var total uint64
	for _, s := range done {
		total += s.Ticks
		lines = append(lines, fmt.Sprintf("%-18s %9s  deaths %d", s.Level, formatTicks(s.Ticks, m.step), s.Deaths))
	}
	lines = append(lines, fmt.Sprintf("%-18s %9s", "total", formatTicks(total, m.step)))

	w := 6
	for _, l := range lines {
		w = max(w, len(l)+4)
	}
	h := len(lines) + 4
	box := core.NewRect((m.screen.Width()-w)/2, (m.screen.Height()-h)/2, w, h)
	m.screen.FillRect(box, core.Cell{Rune: ' '})
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, "CAMPAIGN COMPLETE")
	for i, l := range lines {
		m.screen.DrawText(box.X+2, box.Y+3+i, l)
	}
}

// formatTicks renders a tick count as m:ss.cc.
func formatTicks(ticks uint64, step time.Duration) string {
	d := time.Duration(ticks) * step //#nosec G115 -- display only
	cs := d.Milliseconds() / 10
	return fmt.Sprintf("%d:%02d.%02d", cs/6000, cs/100%60, cs%100)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Campaign exposes the running campaign.
func (m Model) Campaign() *sim.Campaign {
	return m.campaign
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
