// Package tui runs Asteroids on Bubble Tea.
// It owns the terminal loop, key handling, the menu and scoreboard screens,
// replay playback and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the tick loop that produced it; a model drops ticks from
// loops other than its own, so a loop left over from a previous game in the
// same program cannot speed up the next one.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd schedules the next tick of loop gen at the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
