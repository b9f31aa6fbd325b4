// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the session to run the frame it scheduled. Frames that were
// cancelled by a pause or game over carry a stale ID and are ignored.
type TickMsg struct {
	ID uint64
}

// tickCmd schedules frame id after interval. An id of 0 schedules nothing.
func tickCmd(id uint64, interval time.Duration) tea.Cmd {
	if id == 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}
