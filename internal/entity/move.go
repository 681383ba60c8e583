package entity

import "github.com/vovakirdan/infestation/internal/core"

// Step moves e by delta, resolving each axis on its own: X is tried first with
// the old Y, then Y with the committed X. An axis whose candidate box would
// overlap an obstacle is not committed. It reports whether either axis was
// blocked.
func Step(e *Entity, delta core.Vec2, obstacles []core.Rect) (blocked bool) {
	if delta.X != 0 {
		next := core.V(e.Pos.X+delta.X, e.Pos.Y)
		if core.OverlapsAny(e.BoxAt(next), obstacles) {
			blocked = true
		} else {
			e.Pos = next
		}
	}
	if delta.Y != 0 {
		next := core.V(e.Pos.X, e.Pos.Y+delta.Y)
		if core.OverlapsAny(e.BoxAt(next), obstacles) {
			blocked = true
		} else {
			e.Pos = next
		}
	}
	return blocked
}

// MoveDir moves e along dir at speed for dt. A zero direction is no movement.
func MoveDir(e *Entity, dir core.Vec2, speed, dt float64, obstacles []core.Rect) (blocked bool) {
	unit, ok := dir.Normalize()
	if !ok {
		return false
	}
	return Step(e, unit.Scale(speed*dt), obstacles)
}

// MoveToward moves e toward target. It does nothing when target is within
// Epsilon of the current position.
func MoveToward(e *Entity, target core.Vec2, speed, dt float64, obstacles []core.Rect) (blocked bool) {
	return MoveDir(e, target.Sub(e.Pos), speed, dt, obstacles)
}

// MoveAway moves e directly away from threat.
func MoveAway(e *Entity, threat core.Vec2, speed, dt float64, obstacles []core.Rect) (blocked bool) {
	return MoveDir(e, e.Pos.Sub(threat), speed, dt, obstacles)
}

// Arrived reports whether e is within radius of p.
func Arrived(e *Entity, p core.Vec2, radius float64) bool {
	return e.Pos.DistSq(p) <= radius*radius
}
