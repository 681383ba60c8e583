// Package level holds the static layout of a playable area and the
// barricades that open as nests are destroyed.
package level

import "github.com/vovakirdan/infestation/internal/core"

// Barricade blocks movement until the number of active nests drops to its
// threshold. Once open it never closes again.
type Barricade struct {
	Rect     core.Rect
	Required int // active nest count at or below which the barricade opens
	Active   bool
}

// NewBarricade creates a closed barricade.
func NewBarricade(r core.Rect, required int) *Barricade {
	return &Barricade{Rect: r, Required: required, Active: true}
}

// Update re-evaluates the barricade and reports whether it opened on this
// call.
func (b *Barricade) Update(activeNests int) bool {
	if !b.Active || activeNests > b.Required {
		return false
	}
	b.Active = false
	return true
}

// Level is a playable area: bounds, permanent walls, barricades, the player
// spawn and the nest sites.
type Level struct {
	Name        string
	Bounds      core.Rect
	Walls       []core.Rect
	Barricades  []*Barricade
	PlayerStart core.Vec2
	Nests       []core.Vec2
}

// Clone returns a copy with fresh barricade state so a level definition can
// back several runs.
func (l *Level) Clone() *Level {
	c := *l
	c.Walls = append([]core.Rect(nil), l.Walls...)
	c.Nests = append([]core.Vec2(nil), l.Nests...)
	c.Barricades = make([]*Barricade, len(l.Barricades))
	for i, b := range l.Barricades {
		cp := *b
		c.Barricades[i] = &cp
	}
	return &c
}

// Obstacles returns the walls plus every active barricade, reusing buf.
func (l *Level) Obstacles(buf []core.Rect) []core.Rect {
	return Obstacles(buf, l.Walls, l.Barricades)
}

// UpdateBarricades re-evaluates every barricade against the active nest
// count and returns those that opened.
func (l *Level) UpdateBarricades(activeNests int) []*Barricade {
	var opened []*Barricade
	for _, b := range l.Barricades {
		if b.Update(activeNests) {
			opened = append(opened, b)
		}
	}
	return opened
}

// Obstacles aggregates walls and active barricades into buf.
func Obstacles(buf []core.Rect, walls []core.Rect, barricades []*Barricade) []core.Rect {
	buf = append(buf[:0], walls...)
	for _, b := range barricades {
		if b.Active {
			buf = append(buf, b.Rect)
		}
	}
	return buf
}
