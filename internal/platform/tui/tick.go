// Package tui runs Blockfit in the terminal with Bubble Tea: the game loop,
// key and mouse mapping, menus, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one frame of the game loop.
type TickMsg time.Time

// tickCmd schedules the next frame at tickRate frames per second.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
