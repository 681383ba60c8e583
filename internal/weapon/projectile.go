package weapon

import (
	"math"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/status"
)

// substep bounds how far a projectile travels between collision samples so
// fast bullets cannot skip over small targets.
const substep = 8.0

// Bullet is a fast projectile that pierces through a number of targets.
type Bullet struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Damage    float64
	Pierce    int
	Remaining float64
	Source    string
	Dead      bool

	hit map[int]bool // entity IDs already struck
}

// NewBullet creates a bullet travelling along dir (unit vector).
func NewBullet(pos, dir core.Vec2, speed, damage float64, pierce int, lifetime float64, source string) *Bullet {
	return &Bullet{
		Pos:       pos,
		Vel:       dir.Scale(speed),
		Damage:    damage,
		Pierce:    pierce,
		Remaining: lifetime,
		Source:    source,
		hit:       make(map[int]bool),
	}
}

// Update moves the bullet and resolves hits along its path. A bullet dies
// when its pierce count runs out, it meets an obstacle, it leaves the
// bounds, or its lifetime ends.
func (b *Bullet) Update(dt float64, field Field, out *Shots) {
	if b.Dead {
		return
	}
	b.Remaining -= dt
	travel := b.Vel.Scale(dt)
	steps := max(1, int(math.Ceil(travel.Len()/substep)))
	step := travel.Scale(1 / float64(steps))

	for i := 0; i < steps && !b.Dead; i++ {
		b.Pos = b.Pos.Add(step)
		if outside(b.Pos, field.Bounds) || obstructed(b.Pos, field.Obstacles) {
			b.Dead = true
			return
		}
		for _, t := range field.Targets {
			body := t.Body()
			if !t.Solid() || b.hit[body.ID] || !core.PointInRect(b.Pos, body.Box()) {
				continue
			}
			b.hit[body.ID] = true
			dealt := t.TakeDamage(b.Damage)
			out.Hits = append(out.Hits, Hit{Target: t, Pos: b.Pos, Damage: dealt, Source: b.Source})
			b.Pierce--
			if b.Pierce <= 0 {
				b.Dead = true
				return
			}
		}
	}
	if b.Remaining <= 0 {
		b.Dead = true
	}
}

// Blob is the plasma projectile. It always turns into a puddle exactly once:
// on hitting a target, on hitting an obstacle, or when its lifetime ends.
type Blob struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Damage    float64
	Remaining float64
	Exploded  bool
}

// NewBlob creates a plasma blob travelling along dir.
func NewBlob(pos, dir core.Vec2) *Blob {
	return &Blob{
		Pos:       pos,
		Vel:       dir.Scale(PlasmaBlobSpeed),
		Damage:    PlasmaDamage,
		Remaining: PlasmaBlobLifetime,
	}
}

// Update moves the blob and explodes it when it hits something or expires.
func (b *Blob) Update(dt float64, field Field, out *Shots) {
	if b.Exploded {
		return
	}
	b.Remaining -= dt
	travel := b.Vel.Scale(dt)
	steps := max(1, int(math.Ceil(travel.Len()/substep)))
	step := travel.Scale(1 / float64(steps))

	for i := 0; i < steps; i++ {
		next := b.Pos.Add(step)
		if outside(next, field.Bounds) || obstructed(next, field.Obstacles) {
			b.explode(out)
			return
		}
		b.Pos = next
		for _, t := range field.Targets {
			if !t.Solid() || !core.PointInRect(b.Pos, t.Body().Box()) {
				continue
			}
			dealt := t.TakeDamage(b.Damage)
			out.Hits = append(out.Hits, Hit{Target: t, Pos: b.Pos, Damage: dealt, Source: PlasmaName})
			b.explode(out)
			return
		}
	}
	if b.Remaining <= 0 {
		b.explode(out)
	}
}

func (b *Blob) explode(out *Shots) {
	if b.Exploded {
		return
	}
	b.Exploded = true
	out.Puddles = append(out.Puddles,
		status.NewPuddle(b.Pos, PuddleRadius, PuddleDPS, PuddleSlow, PuddleDuration))
}

func outside(p core.Vec2, bounds core.Rect) bool {
	if bounds.W <= 0 || bounds.H <= 0 {
		return false
	}
	return p.X < bounds.X || p.Y < bounds.Y || p.X > bounds.Right() || p.Y > bounds.Bottom()
}

func obstructed(p core.Vec2, obstacles []core.Rect) bool {
	for _, o := range obstacles {
		if core.PointInRect(p, o) {
			return true
		}
	}
	return false
}
