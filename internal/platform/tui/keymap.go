package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retrowave-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action, or ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "a", "left":
		return core.ActionLeft
	case "d", "right":
		return core.ActionRight
	case "w", "up":
		return core.ActionUp
	case "s", "down":
		return core.ActionDown
	case " ":
		return core.ActionFire
	case "enter":
		return core.ActionConfirm
	case "p", "esc":
		return core.ActionPause
	case "r":
		return core.ActionRestart
	case "b":
		return core.ActionBack
	case "t":
		return core.ActionTheme
	case "m":
		return core.ActionMusic
	case "n":
		return core.ActionNextTrack
	case "N":
		return core.ActionPrevTrack
	case "+", "=":
		return core.ActionVolumeUp
	case "-", "_":
		return core.ActionVolumeDown
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
