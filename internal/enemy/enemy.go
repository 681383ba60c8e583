// Package enemy implements the enemy archetypes: a shared Enemy body plus
// one transition function per kind, all driven by an entity.Frame.
package enemy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/event"
)

// State is the AI state of an enemy.
type State int

const (
	StateIdle State = iota
	StateWander
	StateChase
	StateHide
	StateStalk
	StateWindup
	StateAttack
	StateRecover
	StateChargePrep
	StateCharge
	StateDrift
	StateLunge
	StateFlee
	StateDying
	StateDead
)

var stateNames = [...]string{
	StateIdle:       "idle",
	StateWander:     "wander",
	StateChase:      "chase",
	StateHide:       "hide",
	StateStalk:      "stalk",
	StateWindup:     "windup",
	StateAttack:     "attack",
	StateRecover:    "recover",
	StateChargePrep: "charging_prep",
	StateCharge:     "charge_attack",
	StateDrift:      "drift",
	StateLunge:      "lunge",
	StateFlee:       "flee",
	StateDying:      "dying",
	StateDead:       "dead",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// timeEps absorbs float drift when a timer is compared against its target.
const timeEps = 1e-9

// Enemy is one live enemy.
type Enemy struct {
	entity.Entity
	Arch Archetype

	State    State
	Timer    float64
	Cooldown float64

	HasAttacked bool
	LungeDir    core.Vec2 // locked attack direction
	Velocity    core.Vec2 // locked charge velocity

	WanderDir   core.Vec2
	WanderSpeed float64
	WanderTimer float64

	// Alpha is the render opacity, 0..255.
	Alpha uint8

	DeathFrame int
	deathTimer float64
	deathSeen  bool
	obligation bool // death work still pending
}

// New creates an enemy of kind at pos. Unknown kinds yield nil.
func New(kind entity.Kind, pos core.Vec2, rng *rand.Rand) *Enemy {
	arch, ok := archetypes[kind]
	if !ok {
		return nil
	}
	e := &Enemy{
		Entity: entity.New(kind, pos, arch.Size, arch.Health, arch.Speed),
		Arch:   arch,
		State:  arch.Initial,
		Alpha:  255,
	}
	e.WanderDir = core.FromAngle(rng.Float64() * 2 * math.Pi)
	if arch.WanderMax > 0 {
		e.WanderTimer = arch.WanderMin + rng.Float64()*(arch.WanderMax-arch.WanderMin)
	}
	e.WanderSpeed = arch.Speed * arch.WanderFactor

	switch kind {
	case entity.KindBroodFly:
		e.rollDrift(rng)
	case entity.KindRoachling:
		if rng.Intn(2) == 0 {
			e.State = StateFlee
		}
		e.Timer = RoachlingMinFor + rng.Float64()*(RoachlingMaxFor-RoachlingMinFor)
	}
	return e
}

// Solid reports whether the enemy can be hit and blocks contact.
// Dying enemies are ghosts.
func (e *Enemy) Solid() bool {
	return e.Health > 0 && !e.Dying
}

// Update runs one tick of the enemy.
func (e *Enemy) Update(f *entity.Frame) {
	if e.Dead() {
		e.BeginDeath(f)
		if e.Dying {
			e.advanceDeath(f)
		}
		return
	}

	switch e.Kind {
	case entity.KindRat, entity.KindBroodRoach:
		updateMelee(e, f)
	case entity.KindBedbug:
		updateStalker(e, f)
	case entity.KindMightyMite:
		updateTank(e, f)
	case entity.KindBroodFly:
		updateFlyer(e, f)
	case entity.KindLarva:
		updateLarva(e, f)
	case entity.KindRoachling:
		updateRoachling(e, f)
	}

	e.Cooldown = max(0, e.Cooldown-f.Dt)
}

// BeginDeath runs the on-death transition once: it stops any burn, emits the
// death trigger, and either settles immediately or starts the dying sequence.
// It is safe to call repeatedly.
func (e *Enemy) BeginDeath(f *entity.Frame) {
	if !e.Dead() || e.deathSeen {
		return
	}
	e.deathSeen = true
	e.Burn.Extinguish()
	f.Emit(event.Death, e.Pos, e.Kind.String())

	switch e.Kind {
	case entity.KindBroodRoach:
		spawnRoachlings(e, f)
		e.State = StateDead
	case entity.KindBroodFly, entity.KindLarva:
		e.Dying = true
		e.obligation = true
		e.State = StateDying
		e.deathTimer = 0
		e.DeathFrame = 0
	default:
		e.State = StateDead
	}
}

func (e *Enemy) advanceDeath(f *entity.Frame) {
	e.deathTimer += f.Dt
	switch e.Kind {
	case entity.KindBroodFly:
		e.DeathFrame = min(FlyDeathFrames-1, int(e.deathTimer/FlyDeathFrame+timeEps))
		if e.DeathFrame == FlyDeathFrames-1 && e.obligation {
			spawnLarvae(e, f)
			e.finishDying()
		}
	case entity.KindLarva:
		if e.deathTimer+timeEps >= LarvaDeathTime {
			e.finishDying()
		}
	default:
		e.finishDying()
	}
}

func (e *Enemy) finishDying() {
	e.obligation = false
	e.Dying = false
	e.State = StateDead
}

// Contact reports whether the enemy's box overlaps the player's.
func (e *Enemy) Contact(p *entity.Player) bool {
	return e.Solid() && core.RectsOverlap(e.Box(), p.Box())
}

func (e *Enemy) speed() float64 {
	return e.Speed * e.SpeedFactor()
}

func (e *Enemy) enter(s State, timer float64) {
	e.State = s
	e.Timer = timer
}

// hitPlayer deals damage to the player and emits the hurt trigger.
func (e *Enemy) hitPlayer(f *entity.Frame, p *entity.Player, dmg float64) {
	if p.TakeDamage(dmg) > 0 {
		f.Emit(event.PlayerHurt, p.Pos, e.Kind.String())
	}
}

// sense returns the distance to the player and whether the player is in
// detection range with a clear line of sight, refreshing the sighting memory.
func (e *Enemy) sense(f *entity.Frame, p *entity.Player) (float64, bool) {
	dist := e.Pos.Dist(p.Pos)
	visible := dist < e.Arch.DetectRange && f.CanSee(e.Pos)
	if visible {
		e.Remember(p.Pos)
	}
	return dist, visible
}

// wander walks along WanderDir and re-rolls it when the timer runs out.
func (e *Enemy) wander(f *entity.Frame) {
	entity.MoveDir(&e.Entity, e.WanderDir, e.WanderSpeed*e.SpeedFactor(), f.Dt, f.Obstacles)
	e.WanderTimer -= f.Dt
	if e.WanderTimer <= 0 {
		e.WanderDir = f.RandomDir()
		e.WanderTimer = f.Float(e.Arch.WanderMin, e.Arch.WanderMax)
	}
}

// pursue moves toward the player when visible, otherwise toward the last
// sighting, forgetting it on arrival. It reports false when there is
// nowhere to go.
func (e *Enemy) pursue(f *entity.Frame, p *entity.Player, visible bool, speed float64) bool {
	if visible {
		entity.MoveToward(&e.Entity, p.Pos, speed, f.Dt, f.Obstacles)
		return true
	}
	if !e.HasLastKnown {
		return false
	}
	entity.MoveToward(&e.Entity, e.LastKnown, speed, f.Dt, f.Obstacles)
	if entity.Arrived(&e.Entity, e.LastKnown, e.Size/2) {
		e.Forget()
	}
	return true
}

// aimAt locks the lunge direction toward p, keeping the old one when p
// coincides with the enemy.
func (e *Enemy) aimAt(p core.Vec2) {
	if dir, ok := p.Sub(e.Pos).Normalize(); ok {
		e.LungeDir = dir
	}
}
