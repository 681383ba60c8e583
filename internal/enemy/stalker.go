package enemy

import (
	"math"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
)

// InVisionCone reports whether pos lies within the player's forward cone of
// half-angle degrees. A position on top of the player is not in the cone.
func InVisionCone(p *entity.Player, pos core.Vec2, degrees float64) bool {
	to, ok := pos.Sub(p.Pos).Normalize()
	if !ok {
		return false
	}
	cos := core.ClampF(p.Facing.Dot(to), -1, 1)
	return math.Acos(cos)*180/math.Pi < degrees
}

// StalkerAlpha maps distance to the player to opacity: opaque up close,
// invisible far away, linear in between.
func StalkerAlpha(dist float64) uint8 {
	switch {
	case dist <= StalkerOpaqueDist:
		return 255
	case dist >= StalkerHiddenDist:
		return 0
	}
	t := (dist - StalkerOpaqueDist) / (StalkerHiddenDist - StalkerOpaqueDist)
	return uint8(core.ClampF(255*(1-t), 0, 255))
}

// updateStalker drives the ambusher: idle → hide/stalk → windup → attack →
// recover. It retreats while the player looks at it and closes in from
// outside the player's view.
func updateStalker(e *Enemy, f *entity.Frame) {
	p, ok := f.Target()
	if !ok {
		e.enter(StateIdle, 0)
		e.Alpha = 0
		return
	}

	dist := e.Pos.Dist(p.Pos)
	seen := InVisionCone(p, e.Pos, StalkerConeDegrees) && f.CanSee(e.Pos)
	e.Alpha = StalkerAlpha(dist)
	if dist < e.Arch.DetectRange && f.CanSee(e.Pos) {
		e.Remember(p.Pos)
	}

	switch e.State {
	case StateIdle:
		if dist < e.Arch.DetectRange {
			if seen {
				e.enter(StateHide, 0)
			} else {
				e.enter(StateStalk, 0)
			}
		}

	case StateHide:
		if !seen {
			e.enter(StateStalk, 0)
			return
		}
		if dist < StalkerSafeDist {
			entity.MoveAway(&e.Entity, p.Pos, e.speed(), f.Dt, f.Obstacles)
		}

	case StateStalk:
		switch {
		case seen:
			e.enter(StateHide, 0)
		case dist > 2*e.Arch.AttackRange:
			entity.MoveToward(&e.Entity, p.Pos, e.speed()*StalkerStalkFactor, f.Dt, f.Obstacles)
		case e.Cooldown <= 0:
			e.enter(StateWindup, e.Arch.Windup)
			e.aimAt(p.Pos)
		}

	case StateWindup:
		e.Timer -= f.Dt
		if e.Timer <= timeEps {
			e.enter(StateAttack, e.Arch.AttackTime)
			e.HasAttacked = false
		}

	case StateAttack:
		entity.MoveDir(&e.Entity, e.LungeDir, e.Arch.LungeSpeed*e.SpeedFactor(), f.Dt, f.Obstacles)
		if !e.HasAttacked && e.Contact(p) {
			e.hitPlayer(f, p, e.Arch.Damage)
			e.HasAttacked = true
		}
		e.Timer -= f.Dt
		if e.Timer <= timeEps {
			e.enter(StateRecover, e.Arch.Recover)
			e.Cooldown = e.Arch.Cooldown
		}

	case StateRecover:
		e.Timer -= f.Dt
		if e.Timer <= timeEps {
			if dist < e.Arch.DetectRange {
				e.enter(StateStalk, 0)
			} else {
				e.enter(StateIdle, 0)
			}
		}

	default:
		e.enter(StateIdle, 0)
	}
}
