// Package tui provides the Bubble Tea integration for Perspective Painters:
// the session model, input mapping, and SSH server support via Wish.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Action represents a game action derived from input.
type Action int

const (
	ActionNone Action = iota
	ActionConfirm  // start the game / perform the active character's action
	ActionNewStory // request a freshly generated scenario
	ActionNextView // cycle to the next viewpoint
	ActionPrevView // cycle to the previous viewpoint
	ActionView1    // jump to the first viewpoint
	ActionView2    // jump to the second viewpoint
	ActionView3    // jump to the third viewpoint
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit, true
	case "enter", " ":
		return ActionConfirm, false
	case "n":
		return ActionNewStory, false
	case "tab", "right", "l":
		return ActionNextView, false
	case "shift+tab", "left", "h":
		return ActionPrevView, false
	case "1":
		return ActionView1, false
	case "2":
		return ActionView2, false
	case "3":
		return ActionView3, false
	}

	return ActionNone, false
}
