// Package tui hosts the runner in a terminal through Bubble Tea. It paces
// the simulation from frame ticks, maps keys and mouse clicks to input
// events and displays the rendered cell buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per displayed frame.
type TickMsg time.Time

// duckReleaseMsg ends an emulated duck hold unless a newer press extended it.
type duckReleaseMsg struct {
	seq int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func duckReleaseCmd(hold time.Duration, seq int) tea.Cmd {
	return tea.Tick(hold, func(time.Time) tea.Msg {
		return duckReleaseMsg{seq: seq}
	})
}
