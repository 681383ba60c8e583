package status

import (
	"math"

	"github.com/vovakirdan/infestation/internal/core"
)

// PuddleTick is the interval between damage pulses an entity takes while
// standing in a puddle.
const PuddleTick = 0.2

// timeEps absorbs float drift when a cooldown is counted down in fixed steps.
const timeEps = 1e-9

// Puddle is a stationary timed damage-and-slow zone.
type Puddle struct {
	Pos       core.Vec2
	Radius    float64
	DPS       float64
	Slow      float64 // speed multiplier applied to entities inside
	Remaining float64
	Duration  float64
}

// NewPuddle creates a puddle that lasts duration seconds.
func NewPuddle(pos core.Vec2, radius, dps, slow, duration float64) *Puddle {
	return &Puddle{
		Pos:       pos,
		Radius:    radius,
		DPS:       dps,
		Slow:      slow,
		Remaining: duration,
		Duration:  duration,
	}
}

// Contains reports whether p is within the radius. The boundary is inside.
func (p *Puddle) Contains(pt core.Vec2) bool {
	return p.Pos.DistSq(pt) <= p.Radius*p.Radius
}

// Update counts down the lifetime.
func (p *Puddle) Update(dt float64) {
	p.Remaining = math.Max(0, p.Remaining-dt)
}

// Expired reports whether the puddle has run out.
func (p *Puddle) Expired() bool {
	return p.Remaining <= 0
}

// Slow is the per-entity puddle state.
type Slow struct {
	Multiplier float64
	cooldown   float64
	marked     bool
}

// Factor returns the speed multiplier, treating the zero value as 1.
func (s *Slow) Factor() float64 {
	if s.Multiplier <= 0 {
		return 1
	}
	return s.Multiplier
}

// Soakable is an entity puddles can affect.
type Soakable interface {
	Center() core.Vec2
	Alive() bool
	SlowState() *Slow
	TakeDamage(amount float64) float64
}

// ApplyPuddles applies every live puddle to every target in two passes.
// The mark pass sets the multiplier of each target inside a puddle (the last
// puddle wins) and pulses damage when the target's cooldown has elapsed.
// The finalize pass resets the multiplier of every unmarked target to 1.
// It returns the total damage dealt.
func ApplyPuddles[T Soakable](puddles []*Puddle, targets []T, dt float64) float64 {
	for _, t := range targets {
		s := t.SlowState()
		s.marked = false
		if s.cooldown > timeEps {
			s.cooldown = math.Max(0, s.cooldown-dt)
		}
	}

	var total float64
	for _, p := range puddles {
		if p.Expired() {
			continue
		}
		for _, t := range targets {
			if !t.Alive() || !p.Contains(t.Center()) {
				continue
			}
			s := t.SlowState()
			s.marked = true
			s.Multiplier = p.Slow
			if s.cooldown <= timeEps {
				total += t.TakeDamage(p.DPS * PuddleTick)
				s.cooldown = PuddleTick
			}
		}
	}

	for _, t := range targets {
		s := t.SlowState()
		if !s.marked {
			s.Multiplier = 1
		}
	}
	return total
}
