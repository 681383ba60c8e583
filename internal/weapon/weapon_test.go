package weapon

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/infestation/internal/core"
	"github.com/vovakirdan/infestation/internal/entity"
	"github.com/vovakirdan/infestation/internal/status"
)

type dummy struct {
	entity.Entity
}

func (d *dummy) Solid() bool { return d.Health > 0 }

func newDummy(id int, pos core.Vec2, health float64) *dummy {
	d := &dummy{Entity: entity.New(entity.KindRat, pos, 20, health, 0)}
	d.ID = id
	return d
}

func field(obstacles []core.Rect, targets ...*dummy) Field {
	f := Field{Obstacles: obstacles, Bounds: core.NewRect(-1000, -1000, 3000, 3000)}
	for _, t := range targets {
		f.Targets = append(f.Targets, t)
	}
	return f
}

func fireAt(aim core.Vec2, f Field) FireInput {
	return FireInput{Dt: 1.0 / 60, Origin: core.V(0, 0), Aim: aim, Field: f, Rng: rand.New(rand.NewSource(1))}
}

func runBullets(shots *Shots, f Field, dt float64, ticks int) {
	for i := 0; i < ticks; i++ {
		for _, b := range shots.Bullets {
			b.Update(dt, f, shots)
		}
	}
}

func TestRifleEdgeTriggered(t *testing.T) {
	r := NewRifle()
	in := fireAt(core.V(100, 0), field(nil))
	var shots Shots

	assert.True(t, r.Fire(in, &shots))
	for i := 0; i < 60; i++ {
		r.Update(1.0 / 60)
		assert.False(t, r.Fire(in, &shots), "holding must not repeat")
	}
	r.ResetTrigger()
	assert.True(t, r.Fire(in, &shots))
	assert.Len(t, shots.Bullets, 2)
}

func TestRifleCooldown(t *testing.T) {
	r := NewRifle()
	in := fireAt(core.V(100, 0), field(nil))
	var shots Shots

	require.True(t, r.Fire(in, &shots))
	r.ResetTrigger()
	r.Update(0.25)
	assert.False(t, r.Fire(in, &shots))
	assert.Equal(t, "cooldown", r.State())
	r.Update(0.25)
	assert.True(t, r.Fire(in, &shots))
}

func TestRifleZeroAim(t *testing.T) {
	r := NewRifle()
	var shots Shots
	assert.False(t, r.Fire(fireAt(core.V(0, 0), field(nil)), &shots))
	assert.Empty(t, shots.Bullets)
}

func TestRiflePierce(t *testing.T) {
	targets := []*dummy{
		newDummy(1, core.V(100, 0), 30),
		newDummy(2, core.V(200, 0), 100),
		newDummy(3, core.V(300, 0), 100),
		newDummy(4, core.V(400, 0), 100),
	}
	f := field(nil, targets...)
	var shots Shots
	require.True(t, NewRifle().Fire(fireAt(core.V(1, 0), f), &shots))
	runBullets(&shots, f, 1.0/60, 60)

	assert.Equal(t, 0.0, targets[0].Health, "damage clamps at zero")
	assert.False(t, targets[0].Alive())
	assert.Equal(t, 60.0, targets[1].Health)
	assert.Equal(t, 60.0, targets[2].Health)
	assert.Equal(t, 100.0, targets[3].Health, "pierce exhausted after three hits")
	assert.True(t, shots.Bullets[0].Dead)
	require.Len(t, shots.Hits, 3)
	assert.Equal(t, 30.0, shots.Hits[0].Damage)
}

func TestBulletHitsEachTargetOnce(t *testing.T) {
	target := newDummy(1, core.V(50, 0), 1000)
	f := field(nil, target)
	var shots Shots
	shots.Bullets = append(shots.Bullets, NewBullet(core.V(0, 0), core.V(1, 0), 100, 10, 5, 5, "test"))
	runBullets(&shots, f, 1.0/60, 60)
	assert.Equal(t, 990.0, target.Health)
}

func TestBulletStopsAtWall(t *testing.T) {
	wall := core.NewRect(100, -50, 20, 100)
	behind := newDummy(1, core.V(200, 0), 100)
	f := field([]core.Rect{wall}, behind)
	var shots Shots
	require.True(t, NewRifle().Fire(fireAt(core.V(1, 0), f), &shots))
	runBullets(&shots, f, 1.0/60, 60)

	b := shots.Bullets[0]
	assert.True(t, b.Dead)
	assert.Less(t, b.Pos.X, 120.0)
	assert.Equal(t, 100.0, behind.Health)
}

func TestBulletLeavesBounds(t *testing.T) {
	f := Field{Bounds: core.NewRect(0, 0, 100, 100)}
	var shots Shots
	b := NewBullet(core.V(50, 50), core.V(1, 0), 1000, 10, 1, 10, "test")
	shots.Bullets = append(shots.Bullets, b)
	runBullets(&shots, f, 0.1, 1)
	assert.True(t, b.Dead)
}

func TestMinigunDrainsAndReloads(t *testing.T) {
	m := NewMinigun()
	in := fireAt(core.V(100, 0), field(nil))
	in.Dt = 0.25
	var shots Shots

	fired := 0
	for i := 0; i < MinigunAmmo; i++ {
		m.Update(in.Dt)
		if m.Fire(in, &shots) {
			fired++
		}
	}
	assert.Equal(t, MinigunAmmo, fired, "one shot per tick")
	cur, capacity := m.Ammo()
	assert.Equal(t, 0, cur)
	assert.Equal(t, MinigunAmmo, capacity)
	assert.True(t, m.Reloading())
	assert.Equal(t, "reloading", m.State())

	for i := 0; i < 9; i++ {
		m.Update(in.Dt)
		assert.False(t, m.Fire(in, &shots), "no firing during reload")
	}
	m.Update(in.Dt)
	assert.False(t, m.Reloading())
	cur, _ = m.Ammo()
	assert.Equal(t, MinigunAmmo, cur)
	assert.True(t, m.Fire(in, &shots))
}

func TestMinigunSpin(t *testing.T) {
	m := NewMinigun()
	in := fireAt(core.V(100, 0), field(nil))
	var shots Shots

	assert.Equal(t, MinigunBaseInterval, m.Interval())
	m.Fire(in, &shots)
	for i := 0; i < 90; i++ {
		m.Update(1.0 / 60)
		m.Fire(in, &shots)
	}
	assert.InDelta(t, 1.0, m.Spin, 1e-9)
	assert.InDelta(t, MinigunMinInterval, m.Interval(), 1e-9)
	assert.InDelta(t, 1-MinigunSpinPenalty, m.MoveFactor(), 1e-9)

	m.ResetTrigger()
	for i := 0; i < 18; i++ {
		m.Update(1.0 / 60)
	}
	assert.InDelta(t, 0.5, m.Spin, 1e-9)
	for i := 0; i < 30; i++ {
		m.Update(1.0 / 60)
	}
	assert.Equal(t, 0.0, m.Spin)
	assert.Equal(t, "idle", m.State())
}

func TestMinigunReloadSlowsMovement(t *testing.T) {
	m := NewMinigun()
	assert.False(t, m.Reload(), "full magazine")

	var shots Shots
	m.Fire(fireAt(core.V(1, 0), field(nil)), &shots)
	m.ResetTrigger()
	require.True(t, m.Reload())
	assert.False(t, m.Reload(), "already reloading")
	assert.InDelta(t, MinigunReloadSlow, m.MoveFactor(), 1e-9)
}

func TestPlasmaExplodesOnExpiry(t *testing.T) {
	p := NewPlasma()
	f := field(nil)
	var shots Shots
	require.True(t, p.Fire(fireAt(core.V(1, 0), f), &shots))
	assert.False(t, p.Fire(fireAt(core.V(1, 0), f), &shots), "edge triggered")

	blob := shots.Blobs[0]
	for i := 0; i < 120; i++ {
		blob.Update(1.0/60, f, &shots)
	}
	assert.True(t, blob.Exploded)
	require.Len(t, shots.Puddles, 1, "explodes exactly once")
	pd := shots.Puddles[0]
	assert.InDelta(t, PlasmaBlobSpeed*PlasmaBlobLifetime, pd.Pos.X, 10)
	assert.Equal(t, PuddleRadius, pd.Radius)
	assert.Equal(t, PuddleSlow, pd.Slow)
}

func TestPlasmaExplodesOnImpact(t *testing.T) {
	target := newDummy(1, core.V(100, 0), 200)
	f := field(nil, target)
	var shots Shots
	require.True(t, NewPlasma().Fire(fireAt(core.V(1, 0), f), &shots))

	blob := shots.Blobs[0]
	for i := 0; i < 120; i++ {
		blob.Update(1.0/60, f, &shots)
	}
	assert.Equal(t, 150.0, target.Health)
	require.Len(t, shots.Puddles, 1)
	assert.InDelta(t, 90, shots.Puddles[0].Pos.X, 8)
}

func TestPlasmaExplodesOnWall(t *testing.T) {
	f := field([]core.Rect{core.NewRect(100, -50, 20, 100)})
	var shots Shots
	blob := NewBlob(core.V(0, 0), core.V(1, 0))
	for i := 0; i < 120; i++ {
		blob.Update(1.0/60, f, &shots)
	}
	require.Len(t, shots.Puddles, 1)
	assert.Less(t, shots.Puddles[0].Pos.X, 100.0)
}

func TestPlasmaPuddleSlowsAndDamages(t *testing.T) {
	target := newDummy(1, core.V(10, 0), 100)
	pd := status.NewPuddle(core.V(0, 0), PuddleRadius, PuddleDPS, PuddleSlow, PuddleDuration)
	status.ApplyPuddles([]*status.Puddle{pd}, []*dummy{target}, 0.1)
	assert.Equal(t, PuddleSlow, target.SpeedFactor())
	assert.Less(t, target.Health, 100.0)
}

func flameUntilFiring(t *testing.T, fl *Flamethrower, in FireInput, shots *Shots) {
	t.Helper()
	for i := 0; i < 30 && fl.Phase != FlameFiring; i++ {
		fl.Update(in.Dt)
		fl.Fire(in, shots)
	}
	require.Equal(t, FlameFiring, fl.Phase)
}

func TestFlamethrowerWarmup(t *testing.T) {
	target := newDummy(1, core.V(50, 0), 1000)
	f := field(nil, target)
	fl := NewFlamethrower()
	in := fireAt(core.V(100, 0), f)
	var shots Shots

	assert.False(t, fl.Fire(in, &shots))
	assert.Equal(t, FlameWarming, fl.Phase)
	for i := 0; i < 14; i++ {
		fl.Update(in.Dt)
		assert.False(t, fl.Fire(in, &shots))
	}
	assert.Equal(t, 1000.0, target.Health, "no damage during warmup")

	flameUntilFiring(t, fl, in, &shots)
	assert.Less(t, target.Health, 1000.0)
	assert.True(t, target.Burn.Active())
	assert.Equal(t, FlameBurnDPS, target.Burn.DPS)
}

func TestFlamethrowerCone(t *testing.T) {
	inside := newDummy(1, core.V(100, 30), 1000)
	outside := newDummy(2, core.V(100, 60), 1000)
	far := newDummy(3, core.V(250, 0), 1000)
	behind := newDummy(4, core.V(-50, 0), 1000)
	f := field(nil, inside, outside, far, behind)
	fl := NewFlamethrower()
	in := fireAt(core.V(100, 0), f)
	var shots Shots
	flameUntilFiring(t, fl, in, &shots)

	assert.Less(t, inside.Health, 1000.0)
	assert.Equal(t, 1000.0, outside.Health)
	assert.Equal(t, 1000.0, far.Health)
	assert.Equal(t, 1000.0, behind.Health)
	assert.InDelta(t, FlameRange, fl.Reach(), 1e-9)
}

func TestFlamethrowerBlockedByWall(t *testing.T) {
	target := newDummy(1, core.V(150, 0), 1000)
	wall := core.NewRect(60, -200, 20, 400)
	f := field([]core.Rect{wall}, target)
	fl := NewFlamethrower()
	in := fireAt(core.V(100, 0), f)
	var shots Shots
	flameUntilFiring(t, fl, in, &shots)

	assert.Equal(t, 1000.0, target.Health)
	assert.Less(t, fl.Reach(), 60.0)
}

func TestFlameDamageFalloff(t *testing.T) {
	tests := []struct {
		dist     float64
		expected float64
	}{
		{0, FlameMaxDamage},
		{FlameRange / 2, (FlameMaxDamage + FlameMinDamage) / 2},
		{FlameRange, FlameMinDamage},
		{FlameRange * 2, FlameMinDamage},
	}
	for _, tt := range tests {
		if got := FlameDamage(tt.dist); got != tt.expected {
			t.Errorf("FlameDamage(%v) = %v, expected %v", tt.dist, got, tt.expected)
		}
	}
}

func TestFlamethrowerBurnout(t *testing.T) {
	fl := NewFlamethrower()
	in := fireAt(core.V(100, 0), field(nil))
	in.Dt = 0.1
	var shots Shots
	flameUntilFiring(t, fl, in, &shots)

	for i := 0; i < 50 && !fl.BurnedOut(); i++ {
		fl.Update(in.Dt)
		fl.Fire(in, &shots)
	}
	require.True(t, fl.BurnedOut())
	ratio, ok := fl.FuelRatio()
	assert.True(t, ok)
	assert.Equal(t, 0.0, ratio)
	assert.Equal(t, FlameEnding, fl.Phase)

	// Still held: locked and no regeneration.
	for i := 0; i < 20; i++ {
		fl.Update(in.Dt)
		assert.False(t, fl.Fire(in, &shots))
	}
	assert.Equal(t, FlameIdle, fl.Phase)
	assert.True(t, fl.BurnedOut())

	fl.ResetTrigger()
	for i := 0; i < 12; i++ {
		fl.Update(in.Dt)
	}
	assert.True(t, fl.BurnedOut(), "needs the restart threshold")
	for i := 0; i < 2; i++ {
		fl.Update(in.Dt)
	}
	assert.False(t, fl.BurnedOut())
	fl.Fire(in, &shots)
	assert.Equal(t, FlameWarming, fl.Phase)
}

func TestFlamethrowerReleaseEnds(t *testing.T) {
	fl := NewFlamethrower()
	in := fireAt(core.V(100, 0), field(nil))
	var shots Shots
	flameUntilFiring(t, fl, in, &shots)

	fl.ResetTrigger()
	fl.Update(in.Dt)
	assert.Equal(t, FlameEnding, fl.Phase)
	for i := 0; i < 20; i++ {
		fl.Update(in.Dt)
	}
	assert.Equal(t, FlameIdle, fl.Phase)
}

func TestLoadoutSwitch(t *testing.T) {
	l := NewLoadout()
	assert.Equal(t, RifleName, l.Current().Name())
	require.True(t, l.Next())
	assert.Equal(t, MinigunName, l.Current().Name())
	assert.False(t, l.Next(), "switch cooldown")
	l.Update(SwitchCooldown)
	require.True(t, l.Next())
	assert.Equal(t, PlasmaName, l.Current().Name())

	assert.True(t, l.Select(FlameName))
	assert.Equal(t, FlameName, l.Current().Name())
	assert.False(t, l.Select("bazooka"))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		w       Weapon
		maxAmmo int
		hasFuel bool
	}{
		{NewRifle(), 0, false},
		{NewMinigun(), MinigunAmmo, false},
		{NewPlasma(), 0, false},
		{NewFlamethrower(), 0, true},
	}
	for _, tt := range tests {
		s := Describe(tt.w)
		if s.MaxAmmo != tt.maxAmmo || s.HasFuel != tt.hasFuel {
			t.Errorf("Describe(%s) = %+v, expected max ammo %d fuel %v", tt.w.Name(), s, tt.maxAmmo, tt.hasFuel)
		}
		if s.MoveFactor != 1 {
			t.Errorf("Describe(%s).MoveFactor = %v, expected 1", tt.w.Name(), s.MoveFactor)
		}
	}
}
