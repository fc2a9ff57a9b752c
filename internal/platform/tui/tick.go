// Package tui provides the Bubble Tea front end for the snake game.
// It handles the terminal loop, key bindings, pacing and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game step.
type TickMsg time.Time

// tickCmd returns a command that sends a tick after the given interval.
// The interval is asked from the game each time so speed changes apply
// on the next tick.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
