package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cavern-tui/cavern/internal/core"
)

// KeyMapper translates Bubble Tea key messages to editor actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an editor action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Keys with no binding map to ActionNone and are ignored downstream.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "h":
		return core.ActionCursorLeft, false
	case "right", "l":
		return core.ActionCursorRight, false
	case "up", "k":
		return core.ActionCursorUp, false
	case "down", "j":
		return core.ActionCursorDown, false
	case " ":
		return core.ActionToggleCell, false
	case "c":
		return core.ActionClear, false
	case "g":
		return core.ActionRegen, false
	case "n":
		return core.ActionNewSeed, false
	case "p":
		return core.ActionToggleRun, false
	case ".":
		return core.ActionStep, false
	case "1":
		return core.ActionModePaint, false
	case "2":
		return core.ActionModeLife, false
	case "3":
		return core.ActionModeWalk, false
	case "m":
		return core.ActionBookmark, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
