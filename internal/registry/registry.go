// Package registry provides a global registry for scenario factories.
// Scenarios register themselves in init() functions, so the CLI and the
// viewer can discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/infestation/internal/core"
)

// ErrUnknownScenario is returned by Create for an unregistered ID.
var ErrUnknownScenario = errors.New("unknown scenario")

// Scenario is a playable simulation. Scenarios contain pure logic with no
// terminal dependencies; the platform handles input mapping, timing and
// drawing the screen buffer.
type Scenario interface {
	// ID returns a unique identifier (e.g., "apartment"), used by the CLI and
	// run history.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset initializes or restarts the simulation. The RuntimeConfig provides
	// the tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current session summary.
	State() core.GameState
}

// Info describes a registered scenario.
type Info struct {
	ID    string
	Title string
}

// Factory creates a new scenario instance.
type Factory func() Scenario

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered scenarios, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scenario by its ID.
func Create(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: create %q: %w", id, ErrUnknownScenario)
	}

	return f(), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
