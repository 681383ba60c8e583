package entity

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/event"
)

// Census answers population queries about the live enemy set.
type Census interface {
	// CountNear counts live entities of kind whose position lies inside the
	// square of the given half extent around center.
	CountNear(kind Kind, center core.Vec2, halfExtent float64) int
}

// SpawnRequest asks the orchestrator to add an enemy after the update pass.
type SpawnRequest struct {
	Kind   Kind
	Pos    core.Vec2
	Source Kind
}

// ShotRequest asks for an enemy projectile.
type ShotRequest struct {
	Pos core.Vec2
	Dir core.Vec2 // unit vector
}

// DropRequest asks for a pickup to be placed.
type DropRequest struct {
	Pos  core.Vec2
	Heal float64
}

// Requests collects what entities want added to the world this tick.
type Requests struct {
	Spawns []SpawnRequest
	Shots  []ShotRequest
	Drops  []DropRequest
}

// Reset empties the queue, keeping its storage.
func (r *Requests) Reset() {
	r.Spawns = r.Spawns[:0]
	r.Shots = r.Shots[:0]
	r.Drops = r.Drops[:0]
}

// Frame is the per-tick context handed to every entity update. Entities read
// the world through it and write back only through Out.
type Frame struct {
	Tick int
	Dt   float64

	Obstacles []core.Rect
	Bounds    core.Rect

	// Player may be nil; updates then idle instead of acting.
	Player *Player
	Census Census

	Rng    *rand.Rand
	Events *event.Bus
	Log    *log.Logger
	Out    *Requests
}

var discard = log.New(io.Discard)

// Logger returns the frame logger, or a discarding one.
func (f *Frame) Logger() *log.Logger {
	if f.Log == nil {
		return discard
	}
	return f.Log
}

// Emit forwards a trigger to the event bus if there is one.
func (f *Frame) Emit(t event.Type, pos core.Vec2, source string) {
	if f.Events != nil {
		f.Events.Emit(t, pos, source)
	}
}

// Target returns the player when it can be acted on.
func (f *Frame) Target() (*Player, bool) {
	if f.Player == nil || !f.Player.Alive() {
		return nil, false
	}
	return f.Player, true
}

// CanSee reports whether the segment from p to the player is unobstructed.
func (f *Frame) CanSee(p core.Vec2) bool {
	player, ok := f.Target()
	if !ok {
		return false
	}
	return core.LineOfSight(p, player.Pos, f.Obstacles)
}

// Spawn queues an enemy spawn.
func (f *Frame) Spawn(kind Kind, pos core.Vec2, source Kind) {
	if f.Out != nil {
		f.Out.Spawns = append(f.Out.Spawns, SpawnRequest{Kind: kind, Pos: pos, Source: source})
	}
}

// Shoot queues an enemy projectile.
func (f *Frame) Shoot(pos, dir core.Vec2) {
	if f.Out != nil {
		f.Out.Shots = append(f.Out.Shots, ShotRequest{Pos: pos, Dir: dir})
	}
}

// Drop queues a pickup.
func (f *Frame) Drop(pos core.Vec2, heal float64) {
	if f.Out != nil {
		f.Out.Drops = append(f.Out.Drops, DropRequest{Pos: pos, Heal: heal})
	}
}

// Float returns a uniform value in [lo, hi).
func (f *Frame) Float(lo, hi float64) float64 {
	return lo + f.Rng.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (f *Frame) Chance(p float64) bool {
	return f.Rng.Float64() < p
}

// RandomDir returns a uniformly distributed unit vector.
func (f *Frame) RandomDir() core.Vec2 {
	return core.FromAngle(f.Float(0, 2*math.Pi))
}
