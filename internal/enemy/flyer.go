package enemy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/event"
)

// rollDrift picks a fresh wander heading, speed and interval for a flyer.
func (e *Enemy) rollDrift(rng *rand.Rand) {
	e.WanderDir = core.FromAngle(rng.Float64() * 2 * math.Pi)
	e.WanderSpeed = e.Arch.Speed * (0.2 + rng.Float64()*0.2)
	e.WanderTimer = e.Arch.WanderMin + rng.Float64()*(e.Arch.WanderMax-e.Arch.WanderMin)
}

// updateFlyer drifts around and spits acid at the player whenever it is
// visible and in range. Timer holds the shot cooldown, which only runs
// while the player is in view.
func updateFlyer(e *Enemy, f *entity.Frame) {
	e.State = StateDrift
	e.WanderTimer -= f.Dt
	if e.WanderTimer <= 0 {
		e.rollDrift(f.Rng)
	}
	jitter := core.V(f.Float(-FlyDriftJitter, FlyDriftJitter), f.Float(-FlyDriftJitter, FlyDriftJitter))
	entity.MoveDir(&e.Entity, e.WanderDir.Add(jitter), e.WanderSpeed*e.SpeedFactor(), f.Dt, f.Obstacles)

	p, ok := f.Target()
	if !ok {
		return
	}
	if _, visible := e.sense(f, p); !visible {
		return
	}
	e.Timer -= f.Dt
	if e.Timer <= timeEps {
		if dir, ok := p.Pos.Sub(e.Pos).Normalize(); ok {
			f.Shoot(e.Pos, dir)
			f.Emit(event.WeaponFire, e.Pos, e.Kind.String())
		}
		e.Timer = e.Arch.Cooldown
	}
}

// spawnLarvae places the flyer's brood in a ring around where it died.
// Each larva gets a bounded number of placement attempts and is skipped
// when all of them land in an obstacle.
func spawnLarvae(e *Enemy, f *entity.Frame) {
	for i := 0; i < FlyLarvae; i++ {
		pos, ok := f.PlaceSpawn(entity.DefaultPlaceAttempts, LarvaPlaceSize, func() core.Vec2 {
			dir := f.RandomDir()
			return e.Pos.Add(dir.Scale(f.Float(FlyLarvaMinDist, FlyLarvaMaxDist)))
		})
		if !ok {
			f.Logger().Debug("larva placement failed", "fly", e.ID, "pos", e.Pos)
			continue
		}
		f.Spawn(entity.KindLarva, pos, e.Kind)
	}
}

// updateLarva chases until the player is within its trigger radius, winds
// up with the direction locked, then lunges until it hits something. It dies
// on any impact, hurting the player if that is what it hit.
func updateLarva(e *Enemy, f *entity.Frame) {
	p, ok := f.Target()
	if !ok {
		e.enter(StateChase, 0)
		return
	}
	dist, visible := e.sense(f, p)

	switch e.State {
	case StateChase:
		if visible && dist < e.Arch.DetectRange {
			e.aimAt(p.Pos)
			e.enter(StateWindup, e.Arch.Windup)
			return
		}
		e.pursue(f, p, visible, e.speed())

	case StateWindup:
		e.Timer -= f.Dt
		if e.Timer <= timeEps {
			e.enter(StateLunge, 0)
		}

	case StateLunge:
		blocked := entity.Step(&e.Entity, e.LungeDir.Scale(e.Arch.LungeSpeed*e.SpeedFactor()*f.Dt), f.Obstacles)
		e.Timer += f.Dt
		switch {
		case e.Contact(p):
			e.hitPlayer(f, p, e.Arch.Damage)
			e.TakeDamage(e.Health)
		case blocked:
			e.TakeDamage(e.Health)
		case e.Timer >= LarvaMaxLunge:
			e.enter(StateChase, 0)
		}

	default:
		e.enter(StateChase, 0)
	}
}
