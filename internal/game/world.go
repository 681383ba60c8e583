// Package game binds the simulation pieces into a playable world: it owns
// the entities, runs the fixed per-tick sequence and exposes snapshots and
// a character-cell rendering.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/infestation/internal/config"
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/enemy"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/event"
	"github.com/vovakirdan/infestation/internal/level"
	"github.com/vovakirdan/infestation/internal/nest"
	"github.com/vovakirdan/infestation/internal/status"
	"github.com/vovakirdan/infestation/internal/weapon"
)

// Pickup is a health pack lying in the world.
type Pickup struct {
	Pos       core.Vec2
	Heal      float64
	Collected bool
}

// PickupSize is the side of a pickup's box.
const PickupSize = 24.0

// Box returns the pickup hitbox.
func (p *Pickup) Box() core.Rect {
	return core.RectAround(p.Pos, PickupSize, PickupSize)
}

// World is one running session on one level.
type World struct {
	cfg     config.LevelConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	level  *level.Level
	rng    *rand.Rand
	events *event.Bus

	player  *entity.Player
	loadout *weapon.Loadout
	enemies []*enemy.Enemy
	nests   []*nest.Nest
	acids   []*enemy.Acid
	bullets []*weapon.Bullet
	blobs   []*weapon.Blob
	puddles []*status.Puddle
	pickups []*Pickup

	obstacles []core.Rect
	targets   []weapon.Target
	requests  entity.Requests
	shots     weapon.Shots
	frame     entity.Frame

	nextID         int
	tick           int
	kills          int
	nestsDestroyed int
	paused         bool
	gameOver       bool
	outcome        core.Outcome
	weaponState    string

	// MaxTicks ends the session with a timeout when positive.
	MaxTicks int
}

// NewWorld creates a world for cfg. Call Reset before stepping.
func NewWorld(cfg config.LevelConfig, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{cfg: cfg, log: logger, events: event.NewBus()}
}

// Events returns the trigger bus. Subscribers persist across resets.
func (w *World) Events() *event.Bus {
	return w.events
}

// Player returns the player entity.
func (w *World) Player() *entity.Player {
	return w.player
}

// Loadout returns the player's weapons.
func (w *World) Loadout() *weapon.Loadout {
	return w.loadout
}

// Level returns the runtime level.
func (w *World) Level() *level.Level {
	return w.level
}

// Enemies returns the live enemy list. Callers must not modify it.
func (w *World) Enemies() []*enemy.Enemy {
	return w.enemies
}

// Nests returns every nest, destroyed ones included.
func (w *World) Nests() []*nest.Nest {
	return w.nests
}

// Reset initializes or restarts the session from the level configuration.
func (w *World) Reset(runtime core.RuntimeConfig) {
	w.runtime = runtime
	w.rng = rand.New(rand.NewSource(runtime.Seed))
	w.level = w.cfg.Level()
	w.events.Drain()

	w.nextID = 0
	w.player = entity.NewPlayer(w.level.PlayerStart)
	w.player.ID = w.newID()
	w.loadout = weapon.NewLoadout()
	w.weaponState = w.loadout.Current().State()

	w.enemies = w.enemies[:0]
	w.acids = w.acids[:0]
	w.bullets = w.bullets[:0]
	w.blobs = w.blobs[:0]
	w.puddles = w.puddles[:0]
	w.pickups = w.pickups[:0]
	w.nests = w.nests[:0]
	for _, pos := range w.level.Nests {
		n := nest.New(pos)
		n.ID = w.newID()
		w.nests = append(w.nests, n)
	}

	w.tick = 0
	w.kills = 0
	w.nestsDestroyed = 0
	w.paused = false
	w.gameOver = false
	w.outcome = core.OutcomeNone
	w.obstacles = w.level.Obstacles(w.obstacles)

	w.log.Debug("world reset", "level", w.level.Name, "seed", runtime.Seed, "nests", len(w.nests))
}

func (w *World) newID() int {
	w.nextID++
	return w.nextID
}

// CountNear implements entity.Census over the live enemies.
func (w *World) CountNear(kind entity.Kind, center core.Vec2, halfExtent float64) int {
	n := 0
	for _, e := range w.enemies {
		if e.Kind != kind || !e.Alive() {
			continue
		}
		d := e.Pos.Sub(center)
		if d.X > -halfExtent && d.X < halfExtent && d.Y > -halfExtent && d.Y < halfExtent {
			n++
		}
	}
	return n
}

// ActiveNests counts nests that are still standing.
func (w *World) ActiveNests() int {
	n := 0
	for _, ns := range w.nests {
		if ns.Active {
			n++
		}
	}
	return n
}

// LiveEnemies counts enemies that have not settled into death, including
// ones killed this tick whose death work has not run yet.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.enemies {
		if e.State != enemy.StateDead || e.Dying {
			n++
		}
	}
	return n
}

// AddEnemy places an enemy of kind at pos and returns it, or nil for kinds
// that are not enemies.
func (w *World) AddEnemy(kind entity.Kind, pos core.Vec2) *enemy.Enemy {
	e := enemy.New(kind, pos, w.rng)
	if e == nil {
		return nil
	}
	e.ID = w.newID()
	w.enemies = append(w.enemies, e)
	return e
}

// State returns the session summary.
func (w *World) State() core.GameState {
	s := core.GameState{
		Tick:           w.tick,
		Kills:          w.kills,
		NestsDestroyed: w.nestsDestroyed,
		NestsActive:    w.ActiveNests(),
		GameOver:       w.gameOver,
		Outcome:        w.outcome,
		Paused:         w.paused,
	}
	if w.player != nil {
		s.PlayerHealth = w.player.Health
	}
	if w.loadout != nil {
		s.Weapon = w.loadout.Current().Name()
	}
	return s
}
