package cave

// Mode selects which algorithm an autonomous step runs. Exactly one mode is
// active at a time; switching modes never resets the grid by itself.
type Mode int

const (
	ModePaint Mode = iota // Manual edits only, no autonomous evolution
	ModeLife              // Conway's Game of Life step
	ModeWalk              // Re-carve by drunk walk each step
)

// String returns the mode name shown in the HUD and stored in the journal.
func (m Mode) String() string {
	switch m {
	case ModePaint:
		return "paint"
	case ModeLife:
		return "life"
	case ModeWalk:
		return "walk"
	default:
		return "unknown"
	}
}

// ModeByName maps a journal/CLI name back to a mode.
// The second return is false for unknown names.
func ModeByName(name string) (Mode, bool) {
	switch name {
	case "paint":
		return ModePaint, true
	case "life":
		return ModeLife, true
	case "walk":
		return ModeWalk, true
	default:
		return ModePaint, false
	}
}
