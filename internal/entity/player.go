package entity

import (
	"github.com/vovakirdan/infestation/internal/core"
)

// Player defaults.
const (
	PlayerHealth = 100.0
	PlayerSize   = 30.0
	PlayerSpeed  = 250.0
)

// Player is the controlled entity.
type Player struct {
	Entity

	// Facing is the unit vector toward the aim point.
	Facing core.Vec2
	Moving bool
}

// NewPlayer creates a player at pos facing right.
func NewPlayer(pos core.Vec2) *Player {
	return &Player{
		Entity: New(KindPlayer, pos, PlayerSize, PlayerHealth, PlayerSpeed),
		Facing: core.V(1, 0),
	}
}

// FaceToward turns the player toward aim. Aiming at the player's own
// position keeps the previous facing.
func (p *Player) FaceToward(aim core.Vec2) {
	if dir, ok := aim.Sub(p.Pos).Normalize(); ok {
		p.Facing = dir
	}
}

// MovePushback moves the player along dir at speed for dt. Unlike Step, a
// blocked axis snaps the player flush against the obstacle edge instead of
// refusing the move. The result is clamped to bounds when bounds has area.
func (p *Player) MovePushback(dir core.Vec2, speed, dt float64, obstacles []core.Rect, bounds core.Rect) {
	unit, ok := dir.Normalize()
	p.Moving = ok
	if ok {
		delta := unit.Scale(speed * dt)
		if delta.X != 0 {
			p.Pos.X = p.pushAxis(core.V(p.Pos.X+delta.X, p.Pos.Y), delta.X, true, obstacles)
		}
		if delta.Y != 0 {
			p.Pos.Y = p.pushAxis(core.V(p.Pos.X, p.Pos.Y+delta.Y), delta.Y, false, obstacles)
		}
	}

	if bounds.W > 0 && bounds.H > 0 {
		half := p.Size / 2
		p.Pos.X = core.ClampF(p.Pos.X, bounds.X+half, bounds.Right()-half)
		p.Pos.Y = core.ClampF(p.Pos.Y, bounds.Y+half, bounds.Bottom()-half)
	}
}

// pushAxis resolves one axis of a pushback move and returns the committed
// coordinate on that axis. If snapping lands inside another obstacle the
// move on this axis is dropped.
func (p *Player) pushAxis(candidate core.Vec2, d float64, horizontal bool, obstacles []core.Rect) float64 {
	half := p.Size / 2
	for _, o := range obstacles {
		if !p.BoxAt(candidate).Intersects(o) {
			continue
		}
		switch {
		case horizontal && d > 0:
			candidate.X = o.X - half
		case horizontal:
			candidate.X = o.Right() + half
		case d > 0:
			candidate.Y = o.Y - half
		default:
			candidate.Y = o.Bottom() + half
		}
	}

	if core.OverlapsAny(p.BoxAt(candidate), obstacles) {
		if horizontal {
			return p.Pos.X
		}
		return p.Pos.Y
	}
	if horizontal {
		return candidate.X
	}
	return candidate.Y
}
