package enemy

import (
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
)

// updateMelee drives the swarmer and the brood roach:
// wander → chase → windup → attack → recover.
func updateMelee(e *Enemy, f *entity.Frame) {
	p, ok := f.Target()
	if !ok {
		if e.State != StateWander {
			e.enter(StateWander, 0)
		}
		e.wander(f)
		return
	}
	dist, visible := e.sense(f, p)

	switch e.State {
	case StateWander:
		e.wander(f)
		if visible {
			e.enter(StateChase, 0)
		}

	case StateChase:
		if visible && dist <= e.Arch.AttackRange {
			if e.Cooldown <= 0 {
				e.enter(StateWindup, e.Arch.Windup)
				if !e.Arch.AimAtWindupEnd {
					e.aimAt(p.Pos)
				}
			}
			return
		}
		if !e.pursue(f, p, visible, e.speed()) {
			e.enter(StateWander, 0)
		}

	case StateWindup:
		e.Timer -= f.Dt
		if e.Timer <= timeEps {
			if e.Arch.AimAtWindupEnd {
				e.aimAt(p.Pos)
			}
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
			if visible {
				e.enter(StateChase, 0)
			} else {
				e.enter(StateWander, 0)
			}
		}

	default:
		e.enter(StateWander, 0)
	}
}

// spawnRoachlings scatters the brood roach's young around its body. A
// roachling whose box would land in an obstacle is skipped.
func spawnRoachlings(e *Enemy, f *entity.Frame) {
	size := archetypes[entity.KindRoachling].Size
	n := BroodMinSpawn + f.Rng.Intn(BroodMaxSpawn-BroodMinSpawn+1)
	for i := 0; i < n; i++ {
		pos, ok := f.PlaceSpawn(entity.DefaultPlaceAttempts, size, func() core.Vec2 {
			return e.Pos.Add(core.V(f.Float(-BroodScatter, BroodScatter), f.Float(-BroodScatter, BroodScatter)))
		})
		if !ok {
			f.Logger().Debug("roachling placement failed", "roach", e.ID, "pos", e.Pos)
			continue
		}
		f.Spawn(entity.KindRoachling, pos, e.Kind)
	}
}

// updateRoachling toggles between rushing and fleeing the player at random.
func updateRoachling(e *Enemy, f *entity.Frame) {
	e.Timer -= f.Dt
	if e.Timer <= 0 {
		if f.Rng.Intn(2) == 0 {
			e.State = StateAttack
		} else {
			e.State = StateFlee
		}
		e.Timer = f.Float(RoachlingMinFor, RoachlingMaxFor)
	}

	p, ok := f.Target()
	if !ok {
		return
	}
	switch e.State {
	case StateAttack:
		entity.MoveToward(&e.Entity, p.Pos, e.speed(), f.Dt, f.Obstacles)
		if e.Contact(p) {
			e.hitPlayer(f, p, e.Arch.Damage)
			e.enter(StateFlee, RoachlingFlee)
		}
	case StateFlee:
		entity.MoveAway(&e.Entity, p.Pos, e.speed(), f.Dt, f.Obstacles)
	default:
		e.State = StateFlee
	}
}
