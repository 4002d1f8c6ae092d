// Package tui provides the Bubble Tea integration for colorbubble.
// It handles the terminal UI loop, key intake, rendering and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per rendered frame. The simulation decides how many
// fixed ticks the elapsed time covers.
type FrameMsg struct {
	At    time.Time
	Model uint64 // id of the model whose frame loop sent it
}

var modelIDs atomic.Uint64

func nextModelID() uint64 {
	return modelIDs.Add(1)
}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int, id uint64) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t, Model: id}
	})
}
