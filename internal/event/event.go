// Package event carries the named trigger events the simulation emits for the
// audio collaborator (and anyone else who wants to listen).
package event

import "github.com/vovakirdan/infestation/internal/core"

// Type names a trigger event.
type Type string

const (
	Hit           Type = "hit"
	Death         Type = "death"
	Ignite        Type = "ignite"
	Extinguish    Type = "extinguish"
	WeaponFire    Type = "weapon_fire"
	WeaponState   Type = "weapon_state" // switch, warmup, burnout, spin
	Reload        Type = "reload"
	PlayerHurt    Type = "player_hurt"
	Spawn         Type = "spawn"
	Explode       Type = "explode"
	NestDestroyed Type = "nest_destroyed"
	BarricadeOpen Type = "barricade_open"
	Pickup        Type = "pickup"
)

// Event is a single trigger.
type Event struct {
	Type   Type
	Tick   int
	Pos    core.Vec2
	Source string // what emitted it, e.g. "rat" or "minigun"
	Detail string // optional qualifier, e.g. the new weapon state

	// Distance from the listener, valid when HasDistance is set.
	Distance    float64
	HasDistance bool
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Bus dispatches events to subscribers and buffers them until drained.
// It is owned by one simulation and is not safe for concurrent use.
type Bus struct {
	listeners map[Type][]Listener
	any       []Listener
	pending   []Event

	tick        int
	listenerPos core.Vec2
	hasListener bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[Type][]Listener),
	}
}

// Subscribe registers l for one event type.
func (b *Bus) Subscribe(t Type, l Listener) {
	b.listeners[t] = append(b.listeners[t], l)
}

// SubscribeAll registers l for every event type.
func (b *Bus) SubscribeAll(l Listener) {
	b.any = append(b.any, l)
}

// SetTick stamps subsequent events with tick.
func (b *Bus) SetTick(tick int) {
	b.tick = tick
}

// SetListener sets the position distances are measured from.
func (b *Bus) SetListener(p core.Vec2) {
	b.listenerPos = p
	b.hasListener = true
}

// Emit builds an event at pos and dispatches it.
func (b *Bus) Emit(t Type, pos core.Vec2, source string) {
	b.EmitDetail(t, pos, source, "")
}

// EmitDetail is Emit with a qualifier.
func (b *Bus) EmitDetail(t Type, pos core.Vec2, source, detail string) {
	if b == nil {
		return
	}
	e := Event{Type: t, Tick: b.tick, Pos: pos, Source: source, Detail: detail}
	if b.hasListener {
		e.Distance = b.listenerPos.Dist(pos)
		e.HasDistance = true
	}
	b.Dispatch(e)
}

// Dispatch sends e to its subscribers and appends it to the pending buffer.
func (b *Bus) Dispatch(e Event) {
	b.pending = append(b.pending, e)
	for _, l := range b.listeners[e.Type] {
		l.OnEvent(e)
	}
	for _, l := range b.any {
		l.OnEvent(e)
	}
}

// Drain returns and clears the buffered events.
func (b *Bus) Drain() []Event {
	out := b.pending
	b.pending = nil
	return out
}

// Pending returns the number of buffered events.
func (b *Bus) Pending() int {
	return len(b.pending)
}
