package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/infestation/internal/registry"
	"github.com/vovakirdan/infestation/internal/storage"
)

// Run history layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show level list sidebar
	sidebarWidth       = 24  // Width of level list sidebar
	maxRuns            = 100 // Max runs to load
)

// RunsKeyMap defines the key bindings for the run history screen.
type RunsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Order     key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.Order, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Order, k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Order: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "best/recent"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for the run history screen.
type RunsModel struct {
	levels      []registry.Info
	cursor      int            // Currently selected level index
	store       *storage.Store // Run storage
	runs        []storage.Run
	best        bool // Best runs instead of most recent
	err         error
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool
}

// NewRunsModel creates a new run history model.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		levels:      registry.List(),
		store:       store,
		best:        true,
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Outcome", Width: 8},
		{Title: "Nests", Width: 6},
		{Title: "Kills", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "HP", Width: 4},
		{Title: "Date", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("88")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads runs for the selected level.
func (m *RunsModel) loadRuns() {
	m.runs, m.err = nil, nil
	if m.store != nil && len(m.levels) > 0 {
		id := m.levels[m.cursor].ID
		if m.best {
			m.runs, m.err = m.store.BestRuns(id, maxRuns)
		} else {
			m.runs, m.err = m.store.RecentRuns(id, maxRuns)
		}
	}
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows.
func RunRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			string(r.Outcome),
			fmt.Sprintf("%d", r.NestsDestroyed),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%.0f", r.Health),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the run history model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the run history.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + len(m.levels) - 1) % len(m.levels)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Order):
			m.best = !m.best
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(RunRows(m.runs))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the run history.
func (m RunsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	order := "RECENT RUNS"
	if m.best {
		order = "BEST RUNS"
	}
	title := order
	if len(m.levels) > 0 {
		title = fmt.Sprintf("%s - %s", order, m.levels[m.cursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	content := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", content))
	} else {
		b.WriteString(centerText(content, m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the level list.
func (m RunsModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, l := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := l.Title
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or an empty message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Run history unavailable:\n" + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nClear a level to set a record!")
	}
	return m.table.View()
}

// RunRunsBrowser runs the run history screen.
// Returns true if user wants to go back to the menu, false if quitting.
func RunRunsBrowser(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRunsModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunsModel)
	if !ok {
		return false, nil
	}
	return m.goingBack, nil
}
