// Package nest implements the enemy spawn points that the player has to
// destroy.
package nest

import (
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/event"
)

// Nest parameters.
const (
	Health = 300.0
	Size   = 64.0

	RatInterval = 4.0
	MaxRats     = 5
	FlyInterval = RatInterval * 1.8
	FlyChance   = 0.6
	MaxFlies    = 3

	// SearchRange is the base half extent of the nearby-count box.
	SearchRange = 500.0
	// AngryRange is the distance under which a visible player enrages the nest.
	AngryRange = 600.0
	// MinFactor is the floor of the proximity scaling.
	MinFactor = 0.3

	SpawnOffset = 100.0
	SpawnSize   = 24.0

	DropChance = 0.5
	DropHeal   = 35.0
)

// Nest is a stationary, destructible spawner.
type Nest struct {
	entity.Entity

	// Active is false once the nest is destroyed.
	Active bool
	// Angry and Factor are recomputed every tick.
	Angry  bool
	Factor float64

	ratTimer float64
	flyTimer float64
}

// New creates an active nest centered on pos.
func New(pos core.Vec2) *Nest {
	return &Nest{
		Entity: entity.New(entity.KindNest, pos, Size, Health, 0),
		Active: true,
		Factor: 1,
	}
}

// Solid reports whether the nest can still be damaged.
func (n *Nest) Solid() bool {
	return n.Active
}

// Update runs one tick: burn decay, destruction, aggression and spawning.
func (n *Nest) Update(f *entity.Frame) {
	if dmg := n.Burn.Tick(f.Dt); dmg > 0 {
		n.TakeDamage(dmg)
	}
	if !n.Active {
		return
	}
	if n.Health <= 0 {
		n.destroy(f)
		return
	}

	n.Angry = false
	n.Factor = 1
	visible := false
	if player, ok := f.Target(); ok {
		visible = core.LineOfSight(n.Pos, player.Pos, f.Obstacles)
		if dist := n.Pos.Dist(player.Pos); visible && dist < AngryRange {
			n.Angry = true
			n.Factor = max(MinFactor, dist/AngryRange)
		}
	}

	n.ratTimer += f.Dt
	n.flyTimer += f.Dt

	if n.ratTimer > RatInterval*n.Factor && n.nearby(f, entity.KindRat, SearchRange*n.Factor) < MaxRats {
		n.ratTimer = 0
		n.spawn(f, entity.KindRat)
	}

	// Anger only speeds up rats; flies keep the base interval and box.
	if n.flyTimer > FlyInterval && n.nearby(f, entity.KindBroodFly, SearchRange) < MaxFlies {
		if visible && f.Chance(FlyChance) {
			n.flyTimer = 0
			n.spawn(f, entity.KindBroodFly)
		}
	}
}

func (n *Nest) nearby(f *entity.Frame, kind entity.Kind, halfExtent float64) int {
	if f.Census == nil {
		return 0
	}
	return f.Census.CountNear(kind, n.Pos, halfExtent)
}

func (n *Nest) spawn(f *entity.Frame, kind entity.Kind) {
	pos, ok := f.PlaceSpawn(entity.DefaultPlaceAttempts, SpawnSize, func() core.Vec2 {
		return n.Pos.Add(core.V(f.Float(-SpawnOffset, SpawnOffset), f.Float(-SpawnOffset, SpawnOffset)))
	})
	if !ok {
		f.Logger().Debug("spawn skipped", "nest", n.ID, "kind", kind, "attempts", entity.DefaultPlaceAttempts)
		return
	}
	f.Spawn(kind, pos, entity.KindNest)
	f.Emit(event.Spawn, pos, kind.String())
}

func (n *Nest) destroy(f *entity.Frame) {
	n.Active = false
	n.Angry = false
	n.Burn.Extinguish()
	if f.Chance(DropChance) {
		f.Drop(n.Pos, DropHeal)
	}
	f.Emit(event.NestDestroyed, n.Pos, entity.KindNest.String())
	f.Logger().Info("nest destroyed", "nest", n.ID, "tick", f.Tick)
}
