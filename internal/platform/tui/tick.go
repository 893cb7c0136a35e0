// Package tui provides the Bubble Tea front end for the snake engine.
// It owns the tick loop, maps keys and mouse clicks to engine calls, and
// renders state into a terminal. The same model is served over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick after interval.
// The model re-arms it after every tick, so at most one is in flight.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
