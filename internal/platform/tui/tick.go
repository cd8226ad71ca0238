// Package tui runs games in a terminal with Bubble Tea.
// It handles the frame loop, key bindings and colored screen output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame to step the game.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a TickMsg after one frame.
func tickCmd(frame time.Duration) tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
