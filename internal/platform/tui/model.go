package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cavern-tui/cavern/internal/cave"
	"github.com/cavern-tui/cavern/internal/core"
	"github.com/cavern-tui/cavern/internal/storage"
)

// Model is the Bubble Tea model driving the cave editor.
type Model struct {
	editor     *cave.Editor
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	simState   core.SimState
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given editor.
// The store may be nil; bookmarking is then disabled.
func NewModel(editor *cave.Editor, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use a time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultRuntimeConfig().TickRate
	}

	editor.Reset(cfg)

	return Model{
		editor:     editor,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		simState:   editor.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input to editor actions. Bookmarking is a
// platform concern (it touches the journal store), so it is intercepted
// here instead of reaching the simulation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBookmark {
		m.saveBookmark()
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize adapts the viewport without resetting the grid: the world is
// fixed, only the visible window changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.editor.SetViewport(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.editor.Step(m.inputFrame)
	m.simState = result.State

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveBookmark records the current seed in the journal.
func (m *Model) saveBookmark() {
	if m.store == nil {
		return
	}
	st := m.editor.State()
	//nolint:errcheck // Best-effort save, the editor continues regardless
	m.store.SaveSeed(storage.SeedEntry{
		Mode:   st.Mode,
		Seed:   st.Seed,
		Width:  st.WorldW,
		Height: st.WorldH,
		Param:  m.editor.GeneratorParam(),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.editor.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(editor *cave.Editor, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(editor, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
