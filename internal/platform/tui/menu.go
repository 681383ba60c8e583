package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/registry"
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items    []registry.Info
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *registry.Info // Set when user selects a level
	openRuns bool           // True if user pressed Tab for run history
}

// NewMenuModel creates a new menu model listing every registered scenario.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the level
		}

	case key.Matches(msg, m.keys.Runs):
		m.openRuns = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("I N F E S T A T I O N"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%s)", cursor, item.Title, item.ID)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ScenarioID string
	Config     core.RuntimeConfig
	WantsRuns  bool
	Quit       bool
}

// result summarizes the final menu state.
func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.config}
	switch {
	case m.openRuns:
		r.WantsRuns = true
	case m.quitting || m.selected == nil:
		r.Quit = true
	default:
		r.ScenarioID = m.selected.ID
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
