package core

// RuntimeConfig is what the platform hands the simulation at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Rendering surface width in characters
	ScreenH  int   // Rendering surface height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // Initial RNG seed (0 = platform picks one)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// SimState is the debug state the renderer and the platform read after each
// tick: mode name, seed, run flag and world dimensions.
type SimState struct {
	Mode    string
	Seed    int64
	Running bool
	WorldW  int
	WorldH  int
	CursorX int
	CursorY int
}

// StepResult is returned by the simulation after each tick.
type StepResult struct {
	State SimState
}
