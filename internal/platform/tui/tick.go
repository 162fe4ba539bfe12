// Package tui provides the Bubble Tea integration for the simulation deck.
// It realizes the fixed-tick loop: render every frame, sample input between
// ticks, and advance the active simulation on tick boundaries.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate. Engines subdivide these platform ticks into their own
// step intervals, so runtime speed changes never touch the timer itself.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
