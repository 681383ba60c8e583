package entity

import (
	"github.com/vovakirdan/infestation/internal/core"
)

// DefaultPlaceAttempts bounds randomized spawn placement.
const DefaultPlaceAttempts = 10

// PlaceSpawn tries up to attempts candidate points produced by pick and
// returns the first whose size×size box is clear of the frame's obstacles
// and inside its bounds. The second result is false when every attempt
// failed; the caller skips the spawn.
func (f *Frame) PlaceSpawn(attempts int, size float64, pick func() core.Vec2) (core.Vec2, bool) {
	for i := 0; i < attempts; i++ {
		p := pick()
		box := core.RectAround(p, size, size)
		if core.OverlapsAny(box, f.Obstacles) {
			continue
		}
		if f.Bounds.W > 0 && f.Bounds.H > 0 && !inside(box, f.Bounds) {
			continue
		}
		return p, true
	}
	return core.Vec2{}, false
}

func inside(box, bounds core.Rect) bool {
	return box.X >= bounds.X && box.Y >= bounds.Y &&
		box.Right() <= bounds.Right() && box.Bottom() <= bounds.Bottom()
}
