// Package entity holds the state every simulated body shares (position,
// health, bounding box, status effects, sighting memory), the movement and
// collision resolver, the player, and the per-tick Frame passed to updates.
package entity

import (
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/status"
)

// Kind identifies what an entity is. It doubles as the render tag.
type Kind int

const (
	KindPlayer Kind = iota
	KindRat
	KindBedbug
	KindMightyMite
	KindBroodFly
	KindLarva
	KindBroodRoach
	KindRoachling
	KindNest
)

var kindNames = map[Kind]string{
	KindPlayer:     "player",
	KindRat:        "rat",
	KindBedbug:     "bedbug",
	KindMightyMite: "mighty_mite",
	KindBroodFly:   "brood_fly",
	KindLarva:      "larva",
	KindBroodRoach: "brood_roach",
	KindRoachling:  "roachling",
	KindNest:       "nest",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Entity is the base state of every damageable body.
type Entity struct {
	ID   int
	Kind Kind

	Pos  core.Vec2 // center
	Size float64   // side of the square bounding box

	Health    float64
	MaxHealth float64
	Speed     float64 // base units per second

	// Dying is set while a death animation or spawn obligation is pending.
	// A dying entity still counts as alive until the flag is cleared.
	Dying bool

	Burn status.Burn
	Slow status.Slow

	// LastKnown is the last position the player was seen at.
	LastKnown    core.Vec2
	HasLastKnown bool
}

// New creates an entity at full health.
func New(kind Kind, pos core.Vec2, size, health, speed float64) Entity {
	return Entity{
		Kind:      kind,
		Pos:       pos,
		Size:      size,
		Health:    health,
		MaxHealth: health,
		Speed:     speed,
		Slow:      status.Slow{Multiplier: 1},
	}
}

// Box returns the bounding box at the current position.
func (e *Entity) Box() core.Rect {
	return e.BoxAt(e.Pos)
}

// BoxAt returns the bounding box the entity would have at p.
func (e *Entity) BoxAt(p core.Vec2) core.Rect {
	return core.RectAround(p, e.Size, e.Size)
}

// Center returns the entity position.
func (e *Entity) Center() core.Vec2 {
	return e.Pos
}

// Alive reports whether the entity has health left or is mid-death.
func (e *Entity) Alive() bool {
	return e.Health > 0 || e.Dying
}

// Dead reports whether health has run out, regardless of pending death work.
func (e *Entity) Dead() bool {
	return e.Health <= 0
}

// TakeDamage subtracts amount from health, clamped at zero, and returns the
// damage actually dealt. Zero or negative amounts do nothing.
func (e *Entity) TakeDamage(amount float64) float64 {
	if amount <= 0 || e.Health <= 0 {
		return 0
	}
	before := e.Health
	e.Health -= amount
	if e.Health < 0 {
		e.Health = 0
	}
	return before - e.Health
}

// Heal restores up to amount health without exceeding MaxHealth and returns
// the amount restored.
func (e *Entity) Heal(amount float64) float64 {
	if amount <= 0 || e.Health <= 0 {
		return 0
	}
	before := e.Health
	e.Health = min(e.MaxHealth, e.Health+amount)
	return e.Health - before
}

// SlowState exposes the puddle state.
func (e *Entity) SlowState() *status.Slow {
	return &e.Slow
}

// Body returns the entity itself; embedding types inherit it.
func (e *Entity) Body() *Entity {
	return e
}

// SpeedFactor is the multiplier from status effects for this tick.
func (e *Entity) SpeedFactor() float64 {
	return e.Slow.Factor()
}

// Remember stores a sighting of the player.
func (e *Entity) Remember(p core.Vec2) {
	e.LastKnown = p
	e.HasLastKnown = true
}

// Forget drops the stored sighting.
func (e *Entity) Forget() {
	e.HasLastKnown = false
}

// Damageable is anything weapons and effects can hurt.
type Damageable interface {
	Body() *Entity
	Alive() bool
	TakeDamage(amount float64) float64
}
