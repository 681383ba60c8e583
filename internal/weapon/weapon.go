// Package weapon implements the player's weapons and the projectiles they
// leave in the world.
package weapon

import (
	"math/rand"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/status"
)

// Target is anything a weapon can hit.
type Target interface {
	Body() *entity.Entity
	Solid() bool
	TakeDamage(amount float64) float64
}

// Field is the slice of the world projectiles and cones resolve against.
type Field struct {
	Targets   []Target
	Obstacles []core.Rect
	Bounds    core.Rect
}

// FireInput is what a weapon needs to act this tick.
type FireInput struct {
	Dt     float64
	Origin core.Vec2
	Aim    core.Vec2
	Field  Field
	Rng    *rand.Rand
}

// Hit records damage dealt to one target.
type Hit struct {
	Target  Target
	Pos     core.Vec2
	Damage  float64
	Ignited bool
	Source  string
}

// Shots collects what weapons and projectiles produced this tick.
type Shots struct {
	Bullets []*Bullet
	Blobs   []*Blob
	Puddles []*status.Puddle
	Hits    []Hit
}

// Reset empties the collector, keeping its storage.
func (s *Shots) Reset() {
	s.Bullets = s.Bullets[:0]
	s.Blobs = s.Blobs[:0]
	s.Puddles = s.Puddles[:0]
	s.Hits = s.Hits[:0]
}

// AmmoReporter reports magazine state. Weapons without ammo report a max of 0.
type AmmoReporter interface {
	Ammo() (current, max int)
	Reloading() bool
}

// Reloader starts a reload and reports whether one began.
type Reloader interface {
	Reload() bool
}

// FuelReporter reports the fuel ratio in 0..1; ok is false for weapons
// without fuel.
type FuelReporter interface {
	FuelRatio() (ratio float64, ok bool)
}

// MoveModifier scales the carrier's movement speed.
type MoveModifier interface {
	MoveFactor() float64
}

// TriggerResetter is called when the fire input is released.
type TriggerResetter interface {
	ResetTrigger()
}

// Weapon is the shared weapon contract. Every variant implements every
// capability; those that do not apply report neutral values.
type Weapon interface {
	Name() string
	// State names the current internal state for HUD and events.
	State() string
	// Update advances cooldowns and state timers.
	Update(dt float64)
	// Fire attempts to act this tick while the trigger is held and reports
	// whether anything was fired.
	Fire(in FireInput, out *Shots) bool

	TriggerResetter
	AmmoReporter
	Reloader
	FuelReporter
	MoveModifier
}

// Status is a flattened view of a weapon for the HUD and snapshots.
type Status struct {
	Name       string
	State      string
	Ammo       int
	MaxAmmo    int
	Reloading  bool
	Fuel       float64
	HasFuel    bool
	MoveFactor float64
}

// Describe collects the capability values of w.
func Describe(w Weapon) Status {
	cur, capacity := w.Ammo()
	fuel, hasFuel := w.FuelRatio()
	return Status{
		Name:       w.Name(),
		State:      w.State(),
		Ammo:       cur,
		MaxAmmo:    capacity,
		Reloading:  w.Reloading(),
		Fuel:       fuel,
		HasFuel:    hasFuel,
		MoveFactor: w.MoveFactor(),
	}
}

// noAmmo, noFuel and fullSpeed supply the neutral capability values.
type noAmmo struct{}

func (noAmmo) Ammo() (int, int) { return 0, 0 }
func (noAmmo) Reloading() bool  { return false }
func (noAmmo) Reload() bool     { return false }

type noFuel struct{}

func (noFuel) FuelRatio() (float64, bool) { return 0, false }

type fullSpeed struct{}

func (fullSpeed) MoveFactor() float64 { return 1 }

// trigger tracks edge-triggered firing: one shot per press.
type trigger struct {
	armed bool
}

func newTrigger() trigger { return trigger{armed: true} }

// pull consumes the press if the trigger is armed.
func (t *trigger) pull() bool {
	if !t.armed {
		return false
	}
	t.armed = false
	return true
}

// ResetTrigger re-arms the trigger after release.
func (t *trigger) ResetTrigger() {
	t.armed = true
}

// SwitchCooldown is the minimum time between weapon switches.
const SwitchCooldown = 0.3

// Loadout is the set of weapons a player carries.
type Loadout struct {
	weapons     []Weapon
	index       int
	switchTimer float64
}

// NewLoadout returns the standard loadout: rifle, minigun, plasma, flamethrower.
func NewLoadout() *Loadout {
	return &Loadout{
		weapons: []Weapon{NewRifle(), NewMinigun(), NewPlasma(), NewFlamethrower()},
	}
}

// Current returns the equipped weapon.
func (l *Loadout) Current() Weapon {
	return l.weapons[l.index]
}

// Weapons returns every carried weapon in switch order.
func (l *Loadout) Weapons() []Weapon {
	return l.weapons
}

// Update advances the switch timer and the equipped weapon.
func (l *Loadout) Update(dt float64) {
	l.switchTimer = max(0, l.switchTimer-dt)
	l.Current().Update(dt)
}

// Next equips the following weapon, releasing the current trigger first.
// It reports false while the switch cooldown runs.
func (l *Loadout) Next() bool {
	if l.switchTimer > 0 {
		return false
	}
	l.Current().ResetTrigger()
	l.index = (l.index + 1) % len(l.weapons)
	l.switchTimer = SwitchCooldown
	return true
}

// Select equips the weapon with the given name, bypassing the cooldown.
func (l *Loadout) Select(name string) bool {
	for i, w := range l.weapons {
		if w.Name() == name {
			if i != l.index {
				l.Current().ResetTrigger()
				l.index = i
			}
			return true
		}
	}
	return false
}
