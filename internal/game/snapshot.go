package game

import (
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/weapon"
)

// EntityView is the visual state of one entity.
type EntityView struct {
	ID        int
	Kind      string
	Pos       core.Vec2
	Box       core.Rect
	Health    float64
	State     string
	Burn      string
	BurnFrame int
	Alive     bool
	Dying     bool
	Alpha     uint8
}

// Snapshot is the complete observable state after a tick, for the renderer
// and for determinism checks.
type Snapshot struct {
	Tick    int
	Outcome core.Outcome

	Player EntityView
	Facing core.Vec2
	Weapon weapon.Status

	Enemies    []EntityView
	Nests      []EntityView
	Bullets    []core.Vec2
	Blobs      []core.Vec2
	Acids      []core.Vec2
	Puddles    []core.Vec2
	Pickups    []core.Vec2
	Barricades []bool

	Kills          int
	NestsDestroyed int
}

func view(e *entity.Entity, state string) EntityView {
	return EntityView{
		ID:        e.ID,
		Kind:      e.Kind.String(),
		Pos:       e.Pos,
		Box:       e.Box(),
		Health:    e.Health,
		State:     state,
		Burn:      e.Burn.Phase.String(),
		BurnFrame: e.Burn.Frame,
		Alive:     e.Alive(),
		Dying:     e.Dying,
		Alpha:     255,
	}
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:           w.tick,
		Outcome:        w.outcome,
		Player:         view(&w.player.Entity, "player"),
		Facing:         w.player.Facing,
		Weapon:         weapon.Describe(w.loadout.Current()),
		Kills:          w.kills,
		NestsDestroyed: w.nestsDestroyed,
	}

	for _, e := range w.enemies {
		v := view(&e.Entity, e.State.String())
		v.Alpha = e.Alpha
		s.Enemies = append(s.Enemies, v)
	}
	for _, n := range w.nests {
		state := "calm"
		switch {
		case !n.Active:
			state = "destroyed"
		case n.Angry:
			state = "angry"
		}
		s.Nests = append(s.Nests, view(&n.Entity, state))
	}
	for _, b := range w.bullets {
		s.Bullets = append(s.Bullets, b.Pos)
	}
	for _, b := range w.blobs {
		s.Blobs = append(s.Blobs, b.Pos)
	}
	for _, a := range w.acids {
		s.Acids = append(s.Acids, a.Pos)
	}
	for _, p := range w.puddles {
		s.Puddles = append(s.Puddles, p.Pos)
	}
	for _, p := range w.pickups {
		s.Pickups = append(s.Pickups, p.Pos)
	}
	for _, b := range w.level.Barricades {
		s.Barricades = append(s.Barricades, b.Active)
	}
	return s
}
