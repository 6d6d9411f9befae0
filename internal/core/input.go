package core

// Action is a semantic editor action, abstracted from physical key presses.
// The platform maps keys to actions; the simulation only sees actions, so
// unrecognized input never reaches it.
type Action int

const (
	ActionNone        Action = iota
	ActionCursorLeft         // Move cursor one cell left
	ActionCursorRight        // Move cursor one cell right
	ActionCursorUp           // Move cursor one cell up
	ActionCursorDown         // Move cursor one cell down
	ActionToggleCell         // Invert the cell under the cursor
	ActionClear              // Open every cell
	ActionRegen              // Regenerate with the current seed
	ActionNewSeed            // Increment the seed and regenerate
	ActionToggleRun          // Start/stop autonomous stepping
	ActionStep               // Single simulation step, regardless of run state
	ActionModePaint          // Switch to paint mode
	ActionModeLife           // Switch to Life mode
	ActionModeWalk           // Switch to drunk-walk mode
	ActionBookmark           // Record the current seed in the journal
	ActionQuit               // Exit the editor
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionToggleCell:
		return "ToggleCell"
	case ActionClear:
		return "Clear"
	case ActionRegen:
		return "Regen"
	case ActionNewSeed:
		return "NewSeed"
	case ActionToggleRun:
		return "ToggleRun"
	case ActionStep:
		return "Step"
	case ActionModePaint:
		return "ModePaint"
	case ActionModeLife:
		return "ModeLife"
	case ActionModeWalk:
		return "ModeWalk"
	case ActionBookmark:
		return "Bookmark"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects all actions triggered between two simulation ticks.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
