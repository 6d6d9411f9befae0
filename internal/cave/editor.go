package cave

import (
	"fmt"

	"github.com/cavern-tui/cavern/internal/config"
	"github.com/cavern-tui/cavern/internal/core"
)

// hudHeight is the number of screen rows above the map viewport.
const hudHeight = 2

// cellWidth is how many screen columns one world cell occupies. Terminal
// cells are roughly twice as tall as wide, so doubling makes the map square.
const cellWidth = 2

// Editor is the simulation controller: it owns the grid, the cursor and the
// camera, holds the active mode and run state, and advances the world one
// step per invocation according to the mode. It is pure state-machine code;
// the platform layer feeds it InputFrames and reads its Screen output.
type Editor struct {
	cfg  config.CaveConfig
	grid *core.Grid
	cam  core.Camera

	cursorX int
	cursorY int

	mode    Mode
	running bool
	seed    int64
	tick    uint64

	screenW int
	screenH int
	viewW   int
	viewH   int

	stepEveryTicks int
	stepTicker     int

	wallGlyph rune
	openGlyph rune
}

// New creates an editor for the given configuration. Reset must be called
// before the first Step.
func New(cfg config.CaveConfig) *Editor {
	if cfg.Generator.FillProbability <= 0 {
		cfg.Generator.FillProbability = DefaultFillProbability
	}
	if cfg.Generator.CarveRatio <= 0 {
		cfg.Generator.CarveRatio = DefaultCarveRatio
	}
	return &Editor{
		cfg:       cfg,
		wallGlyph: firstRune(cfg.Display.WallGlyph, '█'),
		openGlyph: firstRune(cfg.Display.OpenGlyph, ' '),
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Reset initializes the editor: fresh empty grid with the configured world
// dimensions, cursor at the world center, paint mode, paused.
func (e *Editor) Reset(rc core.RuntimeConfig) {
	w := core.Max(1, e.cfg.World.Width)
	h := core.Max(1, e.cfg.World.Height)

	e.grid = core.NewGrid(w, h)
	e.cam = core.Camera{}
	e.cursorX = w / 2
	e.cursorY = h / 2
	e.mode = ModePaint
	e.running = false
	e.seed = rc.Seed
	e.tick = 0
	e.stepTicker = 0

	tickRate := rc.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultRuntimeConfig().TickRate
	}
	stepMillis := e.cfg.Timing.StepMillis
	if stepMillis <= 0 {
		stepMillis = config.DefaultCaveConfig().Timing.StepMillis
	}
	e.stepEveryTicks = core.Max(1, tickRate*stepMillis/1000)

	e.SetViewport(rc.ScreenW, rc.ScreenH)
}

// SetViewport derives the map viewport from the rendering surface size and
// re-clamps the camera. Surface size zero leaves the viewport uninitialized,
// which keeps camera follow a no-op until the first real size arrives.
func (e *Editor) SetViewport(screenW, screenH int) {
	e.screenW = core.Max(0, screenW)
	e.screenH = core.Max(0, screenH)
	e.viewW = e.screenW / cellWidth
	e.viewH = core.Max(0, e.screenH-hudHeight)
	e.followCamera()
}

// Step advances the editor by one platform tick: applies the frame's
// actions, runs an autonomous step if the editor is running and the step
// interval elapsed, and keeps the cursor inside the viewport.
func (e *Editor) Step(in core.InputFrame) core.StepResult {
	e.tick++
	if e.running {
		e.stepTicker++
	}
	e.handleInput(in)

	if e.running && e.stepTicker >= e.stepEveryTicks {
		e.stepTicker = 0
		e.stepActive()
	}

	e.followCamera()
	return core.StepResult{State: e.State()}
}

func (e *Editor) handleInput(in core.InputFrame) {
	if in.Has(core.ActionCursorLeft) {
		e.cursorX = core.Clamp(e.cursorX-1, 0, e.grid.Width()-1)
	}
	if in.Has(core.ActionCursorRight) {
		e.cursorX = core.Clamp(e.cursorX+1, 0, e.grid.Width()-1)
	}
	if in.Has(core.ActionCursorUp) {
		e.cursorY = core.Clamp(e.cursorY-1, 0, e.grid.Height()-1)
	}
	if in.Has(core.ActionCursorDown) {
		e.cursorY = core.Clamp(e.cursorY+1, 0, e.grid.Height()-1)
	}

	if in.Has(core.ActionToggleCell) {
		e.grid.Toggle(e.cursorX, e.cursorY)
	}
	if in.Has(core.ActionClear) {
		e.grid.Clear()
	}

	if in.Has(core.ActionModePaint) {
		e.setMode(ModePaint)
	}
	if in.Has(core.ActionModeLife) {
		e.setMode(ModeLife)
	}
	if in.Has(core.ActionModeWalk) {
		e.setMode(ModeWalk)
	}

	if in.Has(core.ActionRegen) {
		e.regen()
	}
	if in.Has(core.ActionNewSeed) {
		e.seed++
		e.regen()
	}

	if in.Has(core.ActionToggleRun) {
		e.running = !e.running
		e.stepTicker = 0
	}
	if in.Has(core.ActionStep) {
		// Manual single step, independent of the run flag.
		e.stepActive()
	}
}

// setMode switches the active algorithm. Entering Life or Walk always
// pauses the editor and restarts the step interval, so the first autonomous
// step happens one full interval after the switch.
func (e *Editor) setMode(m Mode) {
	e.mode = m
	if m == ModeLife || m == ModeWalk {
		e.running = false
		e.stepTicker = 0
	}
}

// regen rebuilds the grid from the current seed with the generator bound to
// the active mode: the drunk walk in walk mode, the random fill otherwise
// (Life evolves the random soup, paint starts from it).
func (e *Editor) regen() {
	switch e.mode {
	case ModeWalk:
		GenDrunkWalk(e.grid, e.seed, e.cfg.Generator.CarveRatio)
	default:
		RegenRandom(e.grid, e.seed, e.cfg.Generator.FillProbability)
	}
}

// stepActive runs one simulation step of the active mode.
func (e *Editor) stepActive() {
	switch e.mode {
	case ModePaint:
		// Manual edits only.
	case ModeLife:
		e.grid.StepLife()
	case ModeWalk:
		e.seed++
		GenDrunkWalk(e.grid, e.seed, e.cfg.Generator.CarveRatio)
		e.cursorX = e.grid.Width() / 2
		e.cursorY = e.grid.Height() / 2
		e.cam.CenterOn(e.cursorX, e.cursorY, e.viewW, e.viewH, e.grid.Width(), e.grid.Height())
	}
}

func (e *Editor) followCamera() {
	if e.grid == nil {
		return
	}
	e.cam.Follow(e.cursorX, e.cursorY, e.viewW, e.viewH, e.grid.Width(), e.grid.Height())
}

// State returns the debug state the renderer and the platform read.
func (e *Editor) State() core.SimState {
	return core.SimState{
		Mode:    e.mode.String(),
		Seed:    e.seed,
		Running: e.running,
		WorldW:  e.grid.Width(),
		WorldH:  e.grid.Height(),
		CursorX: e.cursorX,
		CursorY: e.cursorY,
	}
}

// Mode returns the active mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Seed returns the current seed counter.
func (e *Editor) Seed() int64 {
	return e.seed
}

// GeneratorParam returns the parameter of the generator bound to the active
// mode (carve ratio in walk mode, fill probability otherwise). Stored
// alongside the seed in the journal so a bookmark fully reproduces a layout.
func (e *Editor) GeneratorParam() float64 {
	if e.mode == ModeWalk {
		return e.cfg.Generator.CarveRatio
	}
	return e.cfg.Generator.FillProbability
}

// Grid exposes the world grid for tests and headless output.
func (e *Editor) Grid() *core.Grid {
	return e.grid
}

// Viewport returns the currently visible world rectangle.
func (e *Editor) Viewport() core.Rect {
	return e.cam.Viewport(e.viewW, e.viewH, e.grid.Width(), e.grid.Height())
}

// Render draws the HUD and the visible map region into the screen buffer.
func (e *Editor) Render(dst *core.Screen) {
	dst.Clear()
	e.renderHUD(dst)

	vp := e.Viewport()
	for vy := 0; vy < vp.H; vy++ {
		wy := vp.Y + vy
		for vx := 0; vx < vp.W; vx++ {
			wx := vp.X + vx
			e.renderCell(dst, vx, vy, wx, wy)
		}
	}
}

func (e *Editor) renderCell(dst *core.Screen, vx, vy, wx, wy int) {
	filled := e.grid.Filled(wx, wy)

	glyph := e.openGlyph
	color := core.ColorDefault
	if filled {
		glyph = e.wallGlyph
		color = core.ColorWall
		if wx == 0 || wy == 0 || wx == e.grid.Width()-1 || wy == e.grid.Height()-1 {
			color = core.ColorBorder
		}
	}
	if wx == e.cursorX && wy == e.cursorY {
		color = core.ColorCursor
		if !filled {
			glyph = '·'
		}
	}

	sx := vx * cellWidth
	sy := hudHeight + vy
	for i := 0; i < cellWidth; i++ {
		dst.SetCell(sx+i, sy, core.Cell{Rune: glyph, Color: color})
	}
}

func (e *Editor) renderHUD(dst *core.Screen) {
	run := "paused"
	if e.running {
		run = "running"
	}
	hud := fmt.Sprintf(" cavern  mode:%s  seed:%d  %s  world:%dx%d  cursor:%d,%d",
		e.mode, e.seed, run, e.grid.Width(), e.grid.Height(), e.cursorX, e.cursorY)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}
