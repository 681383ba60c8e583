package game

import (
	"math"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/weapon"
)

// Autopilot tuning.
const (
	AutoKeepAway   = 120.0 // distance kept from the nearest threat
	AutoFlameRange = 150.0 // enemies closer than this call for the flamethrower
	AutoFireRange  = 700.0 // targets farther than this are not shot at
	autoStuckTicks = 15
	autoDetour     = 60
)

// Autopilot is a deterministic scripted input source for headless runs.
// It hunts the nearest nest, shoots what it can see and backs off from
// enemies that get too close.
type Autopilot struct {
	lastPos     core.Vec2
	stuck       int
	detour      int
	detourSign  float64
	initialized bool
}

// NewAutopilot returns a fresh autopilot.
func NewAutopilot() *Autopilot {
	return &Autopilot{detourSign: 1}
}

// Next produces the input for the coming tick of w.
func (a *Autopilot) Next(w *World) core.InputFrame {
	in := core.NewInputFrame()
	p := w.Player()
	if p == nil || !p.Alive() {
		return in
	}
	obstacles := w.Level().Obstacles(nil)

	var threat core.Vec2
	threatDist := math.Inf(1)
	var aim core.Vec2
	aimDist := math.Inf(1)
	for _, e := range w.Enemies() {
		if !e.Solid() {
			continue
		}
		d := p.Pos.Dist(e.Pos)
		if d < threatDist {
			threat, threatDist = e.Pos, d
		}
		if d < aimDist && d < AutoFireRange && core.LineOfSight(p.Pos, e.Pos, obstacles) {
			aim, aimDist = e.Pos, d
		}
	}

	var goal core.Vec2
	goalDist := math.Inf(1)
	for _, n := range w.Nests() {
		if !n.Active {
			continue
		}
		if d := p.Pos.Dist(n.Pos); d < goalDist {
			goal, goalDist = n.Pos, d
		}
	}

	if math.IsInf(aimDist, 1) && !math.IsInf(goalDist, 1) {
		if goalDist < AutoFireRange && core.LineOfSight(p.Pos, goal, obstacles) {
			aim, aimDist = goal, goalDist
		}
	}
	if !math.IsInf(aimDist, 1) {
		in.AimAt(aim)
		in.FireHeld = true
	} else if !math.IsInf(goalDist, 1) {
		in.AimAt(goal)
	}

	// Movement: toward the nest, away from anything too close.
	var move core.Vec2
	if !math.IsInf(goalDist, 1) && goalDist > AutoKeepAway {
		move, _ = goal.Sub(p.Pos).Normalize()
	}
	if threatDist < AutoKeepAway {
		if away, ok := p.Pos.Sub(threat).Normalize(); ok {
			move = away
		}
	}
	in.Move = a.unstick(p.Pos, move)

	want := weapon.RifleName
	if threatDist < AutoFlameRange {
		want = weapon.FlameName
	}
	if w.Loadout().Current().Name() != want {
		in.Set(core.ActionSwitchWeapon)
	}
	return in
}

// unstick turns the move sideways for a while when the player has not made
// progress for a few ticks.
func (a *Autopilot) unstick(pos, move core.Vec2) core.Vec2 {
	if !a.initialized {
		a.lastPos = pos
		a.initialized = true
	}
	moved := pos.Dist(a.lastPos)
	a.lastPos = pos

	if a.detour > 0 {
		a.detour--
		return core.V(-move.Y, move.X).Scale(a.detourSign).Add(move.Scale(0.3))
	}
	if move == (core.Vec2{}) || moved > 1 {
		a.stuck = 0
		return move
	}
	a.stuck++
	if a.stuck >= autoStuckTicks {
		a.stuck = 0
		a.detour = autoDetour
		a.detourSign = -a.detourSign
	}
	return move
}
