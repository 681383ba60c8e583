package weapon

import (
	"math"

	"github.com/vovakirdan/infestation/internal/core"
)

// Flamethrower parameters.
const (
	FlameName        = "flamethrower"
	FlameWarmup      = 0.25
	FlameCheckRate   = 30.0
	FlameConeDegrees = 45.0
	FlameRange       = 200.0
	FlameMaxDamage   = 18.0
	FlameMinDamage   = 3.0
	FlameBurnDPS     = 6.0
	FlameBurnTime    = 4.0
	FlameFuel        = 100.0
	FlameDrain       = 25.0
	FlameRegen       = 15.0
	FlameRestartFuel = 20.0
	FlameEndTime     = 0.3
)

// FlameState is the flamethrower's firing phase.
type FlameState int

const (
	FlameIdle FlameState = iota
	FlameWarming
	FlameFiring
	FlameEnding
)

func (s FlameState) String() string {
	switch s {
	case FlameWarming:
		return "warmup"
	case FlameFiring:
		return "firing"
	case FlameEnding:
		return "ending"
	default:
		return "idle"
	}
}

// Flamethrower damages everything in a cone while held. It needs a short
// warmup, burns fuel while firing and shuts down when the tank is empty.
type Flamethrower struct {
	noAmmo
	fullSpeed

	Phase     FlameState
	fuel      float64
	timer     float64
	check     float64
	held      bool
	burnedOut bool
	reach     float64
}

// NewFlamethrower returns a fueled, idle flamethrower.
func NewFlamethrower() *Flamethrower {
	return &Flamethrower{fuel: FlameFuel}
}

func (f *Flamethrower) Name() string { return FlameName }

func (f *Flamethrower) State() string {
	if f.burnedOut && f.Phase == FlameIdle {
		return "burnout"
	}
	return f.Phase.String()
}

// Reach is the unobstructed flame length measured by the last check.
func (f *Flamethrower) Reach() float64 { return f.reach }

// BurnedOut reports whether the tank ran dry and firing is locked.
func (f *Flamethrower) BurnedOut() bool { return f.burnedOut }

func (f *Flamethrower) FuelRatio() (float64, bool) {
	return f.fuel / FlameFuel, true
}

func (f *Flamethrower) Update(dt float64) {
	f.check = max(0, f.check-dt)

	switch f.Phase {
	case FlameWarming:
		if !f.held {
			f.Phase = FlameIdle
			break
		}
		f.timer -= dt
		if f.timer <= timeEps {
			f.Phase = FlameFiring
			f.check = 0
		}
	case FlameFiring:
		if !f.held {
			f.end()
			break
		}
		f.fuel -= FlameDrain * dt
		if f.fuel <= 0 {
			f.fuel = 0
			f.burnedOut = true
			f.end()
		}
	case FlameEnding:
		f.timer -= dt
		if f.timer <= timeEps {
			f.Phase = FlameIdle
		}
	}

	if !f.held {
		f.fuel = min(FlameFuel, f.fuel+FlameRegen*dt)
		if f.burnedOut && f.fuel >= FlameRestartFuel {
			f.burnedOut = false
		}
	}
}

func (f *Flamethrower) end() {
	f.Phase = FlameEnding
	f.timer = FlameEndTime
	f.reach = 0
}

// Fire advances the trigger logic and, once warmed up, runs a cone check
// at the check rate. It reports whether a check ran this tick.
func (f *Flamethrower) Fire(in FireInput, out *Shots) bool {
	f.held = true
	if f.burnedOut {
		return false
	}
	switch f.Phase {
	case FlameIdle, FlameEnding:
		f.Phase = FlameWarming
		f.timer = FlameWarmup
		return false
	case FlameWarming:
		return false
	}

	if f.check > timeEps {
		return false
	}
	dir, ok := in.Aim.Sub(in.Origin).Normalize()
	if !ok {
		return false
	}
	f.check = 1 / FlameCheckRate
	f.burst(in, dir, out)
	return true
}

// burst applies one cone check.
func (f *Flamethrower) burst(in FireInput, dir core.Vec2, out *Shots) {
	half := FlameConeDegrees / 2 * math.Pi / 180
	obstacles := in.Field.Obstacles

	f.reach = max(
		core.RayLength(in.Origin, dir, FlameRange, obstacles),
		core.RayLength(in.Origin, dir.Rotate(-half), FlameRange, obstacles),
		core.RayLength(in.Origin, dir.Rotate(half), FlameRange, obstacles),
	)
	aim := dir.Angle()

	for _, t := range in.Field.Targets {
		if !t.Solid() {
			continue
		}
		body := t.Body()
		to := body.Center().Sub(in.Origin)
		dist := to.Len()
		if dist > f.reach {
			continue
		}
		if dist > core.Epsilon && core.AngleDiff(to.Angle(), aim) > half+timeEps {
			continue
		}
		if !core.LineOfSight(in.Origin, body.Center(), obstacles) {
			continue
		}
		dmg := FlameDamage(dist)
		dealt := t.TakeDamage(dmg)
		ignited := body.Burn.Ignite(FlameBurnDPS, FlameBurnTime)
		out.Hits = append(out.Hits, Hit{Target: t, Pos: body.Center(), Damage: dealt, Ignited: ignited, Source: FlameName})
	}
}

// FlameDamage is the per-check damage at distance d: full at the muzzle,
// falling linearly to the minimum at maximum range.
func FlameDamage(d float64) float64 {
	return core.Lerp(FlameMaxDamage, FlameMinDamage, core.ClampF(d/FlameRange, 0, 1))
}

// ResetTrigger stops the flame; the end state plays out in Update.
func (f *Flamethrower) ResetTrigger() {
	f.held = false
}
