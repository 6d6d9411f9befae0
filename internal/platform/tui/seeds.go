package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cavern-tui/cavern/internal/storage"
)

const journalMaxEntries = 100

// journalModes cycles through the mode filters of the browser.
var journalModes = []string{"", "paint", "life", "walk"}

// SeedBrowserKeyMap defines the key bindings for the seed journal browser.
type SeedBrowserKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SeedBrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SeedBrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Quit},
	}
}

// DefaultSeedBrowserKeyMap returns default key bindings.
func DefaultSeedBrowserKeyMap() SeedBrowserKeyMap {
	return SeedBrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SeedBrowserModel is the Bubble Tea model for browsing the seed journal.
type SeedBrowserModel struct {
	store      *storage.Store
	modeCursor int
	table      table.Model
	help       help.Model
	keys       SeedBrowserKeyMap
	width      int
	height     int
	loadErr    error
	quitting   bool
}

// NewSeedBrowserModel creates a seed journal browser.
func NewSeedBrowserModel(store *storage.Store, width, height int) SeedBrowserModel {
	m := SeedBrowserModel{
		store:  store,
		keys:   DefaultSeedBrowserKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadSeeds()
	return m
}

func (m *SeedBrowserModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Mode", Width: 6},
		{Title: "Seed", Width: 20},
		{Title: "World", Width: 9},
		{Title: "Param", Width: 6},
		{Title: "Date", Width: 17},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)

	return t
}

func (m *SeedBrowserModel) tableHeight() int {
	// Title + mode line + help take a few rows
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

// loadSeeds refreshes the table rows for the current mode filter.
func (m *SeedBrowserModel) loadSeeds() {
	mode := journalModes[m.modeCursor]

	var entries []storage.SeedEntry
	var err error
	if mode == "" {
		entries, err = m.store.RecentSeeds(journalMaxEntries)
	} else {
		entries, err = m.store.SeedsForMode(mode, journalMaxEntries)
	}
	if err != nil {
		m.loadErr = err
		m.table.SetRows(nil)
		return
	}
	m.loadErr = nil

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{
			e.Mode,
			fmt.Sprintf("%d", e.Seed),
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			fmt.Sprintf("%.2f", e.Param),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// Init implements tea.Model.
func (m SeedBrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m SeedBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.tableHeight())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.modeCursor = (m.modeCursor + 1) % len(journalModes)
			m.loadSeeds()
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.modeCursor = (m.modeCursor - 1 + len(journalModes)) % len(journalModes)
			m.loadSeeds()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m SeedBrowserModel) View() string {
	if m.quitting {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Render(" Seed Journal ")

	mode := journalModes[m.modeCursor]
	if mode == "" {
		mode = "all modes"
	}
	modeLine := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).
		Render(fmt.Sprintf(" showing: %s ", mode))

	body := m.table.View()
	if m.loadErr != nil {
		body = fmt.Sprintf("  cannot load journal: %v", m.loadErr)
	} else if len(m.table.Rows()) == 0 {
		body = "  no bookmarks yet — press m in the editor to save one"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		modeLine,
		body,
		m.help.View(m.keys),
	)
}

// RunSeedBrowser opens the interactive seed journal browser.
func RunSeedBrowser(store *storage.Store, width, height int) error {
	model := NewSeedBrowserModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// FormatSeedEntry renders one journal entry for plain CLI output.
func FormatSeedEntry(e storage.SeedEntry) string {
	note := ""
	if e.Note != "" {
		note = "  " + e.Note
	}
	return fmt.Sprintf("  %-6s  %-20d  %4dx%-4d  %.2f  %s%s",
		e.Mode, e.Seed, e.Width, e.Height, e.Param,
		e.CreatedAt.Format("2006-01-02 15:04"), note)
}
