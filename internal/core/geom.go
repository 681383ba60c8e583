// Package core provides the geometry, input and screen primitives shared by the
// simulation and its collaborators. It has no external dependencies so that
// game logic stays pure and testable.
package core

import "math"

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return o.Sub(v).Len() }

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 {
	d := o.Sub(v)
	return d.X*d.X + d.Y*d.Y
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns the unit vector of v and false when v has no length.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l < Epsilon {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Rotate turns v by angle radians counter-clockwise.
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c, s}
}

// Epsilon is the distance under which two points are treated as coincident.
const Epsilon = 1e-3

// Rect represents an axis-aligned bounding box in world units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns a w×h rectangle centered on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Intersects reports whether r and other overlap.
// Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if p is inside r (right and bottom edges excluded).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// RectsOverlap is the overlap test used for every placement and attack check.
func RectsOverlap(a, b Rect) bool {
	return a.Intersects(b)
}

// PointInRect reports whether p lies inside r.
func PointInRect(p Vec2, r Rect) bool {
	return r.Contains(p)
}

// OverlapsAny reports whether r overlaps at least one obstacle.
func OverlapsAny(r Rect, obstacles []Rect) bool {
	for _, o := range obstacles {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}

// Line of sight sampling parameters.
const (
	SightStep  = 8.0 // distance between samples
	SightProbe = 2.0 // side of the probe square tested at each sample
)

// LineOfSight reports whether the segment from a to b is clear of obstacles.
// The segment is sampled every SightStep units including both endpoints, and a
// SightProbe square centered on each sample is tested against every obstacle.
// The endpoints are put in a canonical order first so that the result does not
// depend on the direction of the query.
func LineOfSight(a, b Vec2, obstacles []Rect) bool {
	if len(obstacles) == 0 {
		return true
	}
	dist := a.Dist(b)
	if dist < Epsilon {
		return true
	}
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}

	steps := int(math.Ceil(dist / SightStep))
	if steps < 1 {
		steps = 1
	}
	delta := b.Sub(a)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := a.Add(delta.Scale(t))
		if OverlapsAny(RectAround(p, SightProbe, SightProbe), obstacles) {
			return false
		}
	}
	return true
}

// RayLength marches from origin along dir (unit vector) and returns the
// distance of the last clear sample, capped at maxDist.
func RayLength(origin, dir Vec2, maxDist float64, obstacles []Rect) float64 {
	for d := SightStep; d <= maxDist; d += SightStep {
		p := origin.Add(dir.Scale(d))
		if OverlapsAny(RectAround(p, SightProbe, SightProbe), obstacles) {
			return d - SightStep
		}
	}
	return maxDist
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// AngleDiff returns the absolute smallest difference between two angles.
func AngleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < -math.Pi {
		d += 2 * math.Pi
	} else if d > math.Pi {
		d -= 2 * math.Pi
	}
	return math.Abs(d)
}
