package enemy

import (
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
)

// updateTank drives the charger: idle → chase → charging_prep →
// charge_attack → recover. The charge direction is locked when the prep
// finishes and is never re-aimed.
func updateTank(e *Enemy, f *entity.Frame) {
	p, ok := f.Target()
	if !ok {
		e.Velocity = core.Vec2{}
		e.enter(StateIdle, 0)
		e.roam(f)
		return
	}
	dist := e.Pos.Dist(p.Pos)
	visible := f.CanSee(e.Pos)
	if visible && dist < e.Arch.DetectRange {
		e.Remember(p.Pos)
	}

	switch e.State {
	case StateIdle:
		e.roam(f)
		if dist < e.Arch.DetectRange {
			e.enter(StateChase, 0)
		}

	case StateChase:
		switch {
		case dist > e.Arch.DetectRange*TankLoseInterest:
			e.enter(StateIdle, 0)
		case dist < ChargeRange && visible:
			e.enter(StateChargePrep, 0)
		default:
			e.pursue(f, p, true, e.speed())
		}

	case StateChargePrep:
		e.Timer += f.Dt
		if e.Timer+timeEps >= ChargePrep {
			dir, ok := p.Pos.Sub(e.Pos).Normalize()
			if !ok {
				dir = e.WanderDir
			}
			e.Velocity = dir.Scale(ChargeSpeed)
			e.HasAttacked = false
			e.enter(StateCharge, 0)
		}

	case StateCharge:
		blocked := entity.Step(&e.Entity, e.Velocity.Scale(f.Dt*e.SpeedFactor()), f.Obstacles)
		e.Timer += f.Dt
		if !e.HasAttacked && e.Contact(p) {
			e.hitPlayer(f, p, ChargeDamage)
			e.HasAttacked = true
			blocked = true
		}
		if blocked || e.Timer+timeEps >= ChargeDuration {
			e.Velocity = core.Vec2{}
			e.enter(StateRecover, 0)
		}

	case StateRecover:
		e.Timer += f.Dt
		if e.Timer+timeEps >= e.Arch.Recover {
			if dist < e.Arch.DetectRange {
				e.enter(StateChase, 0)
			} else {
				e.enter(StateIdle, 0)
			}
		}

	default:
		e.enter(StateIdle, 0)
	}
}

// roam is the tank's slow wander: each tick there is a small chance of
// picking a new heading.
func (e *Enemy) roam(f *entity.Frame) {
	if f.Chance(TankTurnChance) {
		e.WanderDir = f.RandomDir()
	}
	entity.MoveDir(&e.Entity, e.WanderDir, e.WanderSpeed*e.SpeedFactor(), f.Dt, f.Obstacles)
}
