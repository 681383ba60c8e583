// Package tui is the terminal viewer for the simulation. It turns key and
// mouse events into input frames, drives the fixed tick loop and draws the
// screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
