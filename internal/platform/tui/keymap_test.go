package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// key builds the message a terminal sends for s.
func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key      string
		expected core.Action
	}{
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{" ", core.ActionFire},
		{"enter", core.ActionConfirm},
		{"p", core.ActionPause},
		{"esc", core.ActionPause},
		{"r", core.ActionRestart},
		{"b", core.ActionBack},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"t", core.ActionTheme},
		{"m", core.ActionMusic},
		{"n", core.ActionNextTrack},
		{"N", core.ActionPrevTrack},
		{"+", core.ActionVolumeUp},
		{"=", core.ActionVolumeUp},
		{"-", core.ActionVolumeDown},
		{"x", core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.MapKey(key(tc.key)); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key      string
		expected MenuAction
	}{
		{"up", MenuActionUp},
		{"k", MenuActionUp},
		{"down", MenuActionDown},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{" ", MenuActionSelect},
		{"esc", MenuActionBack},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
		{"t", MenuActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.MapKeyToMenuAction(key(tc.key)); got != tc.expected {
				t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}
