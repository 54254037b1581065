// Package tui drives simulations in the terminal: an interactive Bubble Tea
// program, a headless printer for plain output and an SSH server that hands
// every session its own simulation.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per platform frame. ID ties it to the model that
// scheduled it, so a stale clock never drives a newer simulation.
type TickMsg struct {
	ID   int64
	Time time.Time
}

var lastTickID atomic.Int64

func nextTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
