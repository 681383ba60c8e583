package game

import (
	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/enemy"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/event"
	"github.com/vovakirdan/infestation/internal/status"
	"github.com/vovakirdan/infestation/internal/weapon"
)

// aimReach places the default aim point ahead of the player when the input
// carries none.
const aimReach = 100.0

// Step advances the world by one fixed tick. Events from the previous tick
// that nobody drained are discarded.
func (w *World) Step(in core.InputFrame) core.StepResult {
	w.events.Drain()

	if w.gameOver {
		return core.StepResult{State: w.State()}
	}
	if in.Has(core.ActionQuit) {
		w.finish(core.OutcomeQuit)
		return core.StepResult{State: w.State()}
	}
	if in.Has(core.ActionPause) {
		w.paused = !w.paused
	}
	if w.paused {
		return core.StepResult{State: w.State()}
	}

	w.tick++
	dt := w.runtime.Dt()
	w.events.SetTick(w.tick)
	w.requests.Reset()

	// 1. Obstacles.
	w.obstacles = w.level.Obstacles(w.obstacles)
	f := w.newFrame(dt)

	// 2. Player.
	w.updatePlayer(in, dt)

	// 3. Weapon and player projectiles.
	w.updateWeapon(in, dt)

	// 4. Enemies.
	for _, e := range w.enemies {
		e.Update(f)
	}

	// 5. Enemy projectiles, puddles, burns.
	w.updateEffects(f, dt)

	// 6. Prune.
	w.prune()

	// 7. Nests, then queued spawns and drops.
	for _, n := range w.nests {
		wasActive := n.Active
		n.Update(f)
		if wasActive && !n.Active {
			w.nestsDestroyed++
		}
	}
	w.applyRequests()

	// 8. Barricades.
	for _, b := range w.level.UpdateBarricades(w.ActiveNests()) {
		w.events.Emit(event.BarricadeOpen, b.Rect.Center(), "barricade")
		w.log.Info("barricade cleared", "tick", w.tick, "required", b.Required)
	}

	// 9. Pickups and outcome.
	w.collectPickups()
	w.evaluate()

	return core.StepResult{State: w.State()}
}

func (w *World) newFrame(dt float64) *entity.Frame {
	w.frame = entity.Frame{
		Tick:      w.tick,
		Dt:        dt,
		Obstacles: w.obstacles,
		Bounds:    w.level.Bounds,
		Player:    w.player,
		Census:    w,
		Rng:       w.rng,
		Events:    w.events,
		Log:       w.log,
		Out:       &w.requests,
	}
	return &w.frame
}

func (w *World) updatePlayer(in core.InputFrame, dt float64) {
	p := w.player
	if !p.Alive() {
		return
	}

	if in.Has(core.ActionSwitchWeapon) && w.loadout.Next() {
		w.events.EmitDetail(event.WeaponState, p.Pos, w.loadout.Current().Name(), "switch")
	}
	if in.Has(core.ActionReload) && w.loadout.Current().Reload() {
		w.events.Emit(event.Reload, p.Pos, w.loadout.Current().Name())
		w.log.Debug("reload", "weapon", w.loadout.Current().Name(), "tick", w.tick)
	}

	if in.HasAim {
		p.FaceToward(in.Aim)
	}
	speed := p.Speed * w.loadout.Current().MoveFactor()
	p.MovePushback(in.Move, speed, dt, w.obstacles, w.level.Bounds)
	w.events.SetListener(p.Pos)
}

func (w *World) updateWeapon(in core.InputFrame, dt float64) {
	p := w.player
	cur := w.loadout.Current()
	w.loadout.Update(dt)

	w.targets = w.targets[:0]
	for _, e := range w.enemies {
		w.targets = append(w.targets, e)
	}
	for _, n := range w.nests {
		w.targets = append(w.targets, n)
	}
	field := weapon.Field{Targets: w.targets, Obstacles: w.obstacles, Bounds: w.level.Bounds}

	w.shots.Reset()
	if in.FireHeld && p.Alive() {
		aim := p.Pos.Add(p.Facing.Scale(aimReach))
		if in.HasAim {
			aim = in.Aim
		}
		fire := weapon.FireInput{Dt: dt, Origin: p.Pos, Aim: aim, Field: field, Rng: w.rng}
		wasReloading := cur.Reloading()
		if cur.Fire(fire, &w.shots) {
			w.events.Emit(event.WeaponFire, p.Pos, cur.Name())
		}
		if !wasReloading && cur.Reloading() {
			w.events.Emit(event.Reload, p.Pos, cur.Name())
			w.log.Debug("reload", "weapon", cur.Name(), "tick", w.tick)
		}
	} else {
		cur.ResetTrigger()
	}
	if st := cur.State(); st != w.weaponState {
		w.weaponState = st
		w.events.EmitDetail(event.WeaponState, p.Pos, cur.Name(), st)
	}

	w.bullets = append(w.bullets, w.shots.Bullets...)
	w.blobs = append(w.blobs, w.shots.Blobs...)
	w.shots.Bullets = w.shots.Bullets[:0]
	w.shots.Blobs = w.shots.Blobs[:0]

	for _, b := range w.bullets {
		b.Update(dt, field, &w.shots)
	}
	for _, b := range w.blobs {
		b.Update(dt, field, &w.shots)
	}

	for _, h := range w.shots.Hits {
		w.events.Emit(event.Hit, h.Pos, h.Source)
		if h.Ignited {
			w.events.Emit(event.Ignite, h.Pos, h.Source)
		}
	}
	for _, pd := range w.shots.Puddles {
		w.puddles = append(w.puddles, pd)
		w.events.Emit(event.Explode, pd.Pos, weapon.PlasmaName)
	}
}

func (w *World) updateEffects(f *entity.Frame, dt float64) {
	for _, s := range w.requests.Shots {
		w.acids = append(w.acids, enemy.NewAcid(s.Pos, s.Dir))
	}
	w.requests.Shots = w.requests.Shots[:0]
	for _, a := range w.acids {
		a.Update(f)
	}

	for _, pd := range w.puddles {
		pd.Update(dt)
	}
	status.ApplyPuddles(w.puddles, w.enemies, dt)

	for _, e := range w.enemies {
		wasBurning := e.Burn.Active()
		if dmg := e.Burn.Tick(dt); dmg > 0 {
			e.TakeDamage(dmg)
		}
		if wasBurning && !e.Burn.Active() {
			w.events.Emit(event.Extinguish, e.Pos, e.Kind.String())
		}
	}
}

// prune drops settled enemies and spent projectiles and effects. Enemies
// still owing death work stay until it is done.
func (w *World) prune() {
	live := w.enemies[:0]
	for _, e := range w.enemies {
		if e.State == enemy.StateDead && !e.Dying {
			w.kills++
			continue
		}
		live = append(live, e)
	}
	clear(w.enemies[len(live):])
	w.enemies = live

	w.bullets = keep(w.bullets, func(b *weapon.Bullet) bool { return !b.Dead })
	w.blobs = keep(w.blobs, func(b *weapon.Blob) bool { return !b.Exploded })
	w.acids = keep(w.acids, func(a *enemy.Acid) bool { return !a.Dead })
	w.puddles = keep(w.puddles, func(p *status.Puddle) bool { return !p.Expired() })
	w.pickups = keep(w.pickups, func(p *Pickup) bool { return !p.Collected })
}

// keep filters s in place.
func keep[T any](s []T, ok func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if ok(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}

func (w *World) applyRequests() {
	for _, r := range w.requests.Spawns {
		if e := w.AddEnemy(r.Kind, r.Pos); e != nil {
			w.log.Debug("spawn", "kind", r.Kind, "source", r.Source, "id", e.ID)
		}
	}
	for _, d := range w.requests.Drops {
		w.pickups = append(w.pickups, &Pickup{Pos: d.Pos, Heal: d.Heal})
	}
	w.requests.Reset()
}

func (w *World) collectPickups() {
	p := w.player
	if !p.Alive() {
		return
	}
	for _, pk := range w.pickups {
		if pk.Collected || !core.RectsOverlap(pk.Box(), p.Box()) {
			continue
		}
		pk.Collected = true
		p.Heal(pk.Heal)
		w.events.Emit(event.Pickup, pk.Pos, "health_pack")
	}
}

func (w *World) evaluate() {
	switch {
	case !w.player.Alive():
		w.finish(core.OutcomeDead)
	case w.ActiveNests() == 0 && w.LiveEnemies() == 0:
		w.finish(core.OutcomeWon)
	case w.MaxTicks > 0 && w.tick >= w.MaxTicks:
		w.finish(core.OutcomeTimeout)
	}
}

func (w *World) finish(o core.Outcome) {
	w.gameOver = true
	w.outcome = o
	w.log.Info("session over", "outcome", o, "tick", w.tick, "kills", w.kills, "nests", w.nestsDestroyed)
}
