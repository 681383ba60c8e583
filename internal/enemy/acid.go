package enemy

import (
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/event"
)

// Acid is a projectile spat by a brood fly.
type Acid struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Remaining float64
	Damage    float64
	Dead      bool
}

// NewAcid launches acid from pos along dir.
func NewAcid(pos, dir core.Vec2) *Acid {
	return &Acid{
		Pos:       pos,
		Vel:       dir.Scale(AcidSpeed),
		Remaining: AcidLifetime,
		Damage:    AcidDamage,
	}
}

// Box returns the projectile hitbox.
func (a *Acid) Box() core.Rect {
	return core.RectAround(a.Pos, AcidSize, AcidSize)
}

// Update moves the acid and resolves hits. It expires on lifetime, on the
// player (dealing damage), or on an obstacle.
func (a *Acid) Update(f *entity.Frame) {
	if a.Dead {
		return
	}
	a.Pos = a.Pos.Add(a.Vel.Scale(f.Dt))
	a.Remaining -= f.Dt
	if a.Remaining <= 0 {
		a.Dead = true
		return
	}
	if p, ok := f.Target(); ok && core.RectsOverlap(a.Box(), p.Box()) {
		if p.TakeDamage(a.Damage) > 0 {
			f.Emit(event.PlayerHurt, p.Pos, "acid")
		}
		a.Dead = true
		return
	}
	if core.OverlapsAny(a.Box(), f.Obstacles) {
		a.Dead = true
	}
}
