package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/registry"
	"github.com/vovakirdan/infestation/internal/storage"
)

// Viewport is implemented by scenarios that can map screen cells back to
// world points, which enables mouse aiming.
type Viewport interface {
	ScreenToWorld(dst *core.Screen, x, y int) core.Vec2
	Player() *entity.Player
}

// Model is the Bubble Tea model for playing a scenario.
type Model struct {
	scenario   registry.Scenario
	screen     *core.Screen
	store      *storage.Store
	log        *log.Logger
	config     core.RuntimeConfig
	randomSeed bool
	keys       KeyMap
	help       help.Model
	input      inputState
	gameState  core.GameState
	quitting   bool
	runSaved   bool // Whether the run has been recorded for current game over
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given scenario.
// The bottom row of the terminal is kept for the help line.
func NewModel(scenario registry.Scenario, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	randomSeed := cfg.Seed == 0
	// Use time-based seed if not specified
	if randomSeed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		scenario:   scenario,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 2)),
		store:      store,
		log:        logger,
		config:     cfg,
		randomSeed: randomSeed,
		keys:       DefaultKeyMap(),
		help:       h,
		input:      newInputState(cfg.TickRate),
	}
}

// Init starts the tick loop. The scenario is reset by the caller before
// the program starts, since Init has a value receiver.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := &m.input
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Up):
		in.press(&in.up)
	case key.Matches(msg, m.keys.Down):
		in.press(&in.down)
	case key.Matches(msg, m.keys.Left):
		in.press(&in.left)
	case key.Matches(msg, m.keys.Right):
		in.press(&in.right)
	case key.Matches(msg, m.keys.AimUp):
		in.aim(core.V(0, -1))
	case key.Matches(msg, m.keys.AimDown):
		in.aim(core.V(0, 1))
	case key.Matches(msg, m.keys.AimLeft):
		in.aim(core.V(-1, 0))
	case key.Matches(msg, m.keys.AimRight):
		in.aim(core.V(1, 0))
	case key.Matches(msg, m.keys.Fire):
		in.press(&in.fire)
	case key.Matches(msg, m.keys.Latch):
		in.latched = !in.latched
	case key.Matches(msg, m.keys.Switch):
		in.frame.Set(core.ActionSwitchWeapon)
	case key.Matches(msg, m.keys.Reload):
		in.frame.Set(core.ActionReload)
	case key.Matches(msg, m.keys.Pause):
		in.frame.Set(core.ActionPause)
	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver {
			in.frame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleMouse aims at the pointer and holds fire while the left button is down.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	in := &m.input
	in.mouseAim = true
	in.mouseCell = [2]int{msg.X, msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			in.mouseFire = true
		}
	case tea.MouseActionRelease:
		in.mouseFire = false
	}
	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal. The
// world is independent of the view size, so the session continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 2))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.input.frame.Has(core.ActionRestart) && m.gameState.GameOver {
		if m.randomSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.scenario.Reset(m.config)
		m.gameState = m.scenario.State()
		m.runSaved = false
		m.input.release()
		return m, tickCmd(m.config.TickRate)
	}

	var origin core.Vec2
	var toWorld func(x, y int) core.Vec2
	if vp, ok := m.scenario.(Viewport); ok {
		if p := vp.Player(); p != nil {
			origin = p.Pos
		}
		screen := m.screen
		toWorld = func(x, y int) core.Vec2 { return vp.ScreenToWorld(screen, x, y) }
	}

	result := m.scenario.Step(m.input.next(origin, toWorld))
	m.gameState = result.State
	if m.gameState.Paused {
		m.input.release()
	}

	if m.gameState.GameOver && !m.runSaved {
		m.lastRunID = m.saveRun()
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// quit ends the session, recording it as quit if it was still running.
func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.gameState.GameOver {
		in := core.NewInputFrame()
		in.Set(core.ActionQuit)
		m.gameState = m.scenario.Step(in).State
	}
	if !m.runSaved {
		m.lastRunID = m.saveRun()
		m.runSaved = true
	}
	m.quitting = true
	return m, tea.Quit
}

// saveRun records the finished session. Best-effort: the game continues
// regardless of storage errors.
func (m *Model) saveRun() string {
	if m.store == nil {
		return ""
	}
	run := storage.RunFromState(m.scenario.ID(), m.config.Seed, m.gameState)
	id, err := m.store.SaveRun(run)
	if err != nil {
		m.log.Warn("run not saved", "err", err)
		return ""
	}
	m.log.Debug("run saved", "id", id, "outcome", run.Outcome)
	return id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.scenario.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".infestation", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.scenario.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the last observed session state.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the recorded run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.scenario.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the scenario and returns the final
// model once the player quits.
func Run(scenario registry.Scenario, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (Model, error) {
	model := NewModel(scenario, store, logger, cfg)
	scenario.Reset(model.config)
	model.gameState = scenario.State()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse aiming and fire
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}
