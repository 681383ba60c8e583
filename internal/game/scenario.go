package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/infestation/internal/config"
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/registry"
)

// levelPath stores the custom level file set via CLI
var levelPath string

// logger receives simulation diagnostics for scenarios created by the registry
var logger = log.New(io.Discard)

// SetLevelPath sets a custom level file that overrides the scenario's own.
func SetLevelPath(path string) {
	levelPath = path
}

// SetLogger sets the logger handed to scenario worlds.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Scenario is a registered, level-backed world.
type Scenario struct {
	*World
	id    string
	title string
}

// NewScenario creates a scenario that loads level id on Reset.
func NewScenario(id, title string) *Scenario {
	return &Scenario{World: NewWorld(config.LevelConfig{}, logger), id: id, title: title}
}

// ID returns the unique identifier for this scenario.
func (s *Scenario) ID() string {
	return s.id
}

// Title returns the display name for this scenario.
func (s *Scenario) Title() string {
	return s.title
}

// Reset loads the level and restarts the world. A level that cannot be
// loaded falls back to the built-in apartment.
func (s *Scenario) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadLevel(s.id, levelPath)
	if err != nil {
		logger.Warn("level load failed, using default", "level", s.id, "err", err)
		cfg = config.DefaultLevelConfig()
	}
	s.World.cfg = cfg
	s.World.log = logger
	s.World.Reset(runtime)
}

var _ registry.Scenario = (*Scenario)(nil)

// Register the built-in levels with the registry
func init() {
	registry.Register("apartment", func() registry.Scenario {
		return NewScenario("apartment", "Infested Apartment Complex")
	})
	registry.Register("sewer", func() registry.Scenario {
		return NewScenario("sewer", "Sewer Depths")
	})
}
