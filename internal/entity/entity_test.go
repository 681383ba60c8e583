package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/infestation/internal/core"
)

func TestTakeDamageClampsAtZero(t *testing.T) {
	tests := []struct {
		name     string
		health   float64
		damage   float64
		expected float64
	}{
		{"partial", 50, 20, 30},
		{"exact", 50, 50, 0},
		{"overkill", 30, 40, 0},
		{"zero damage", 50, 0, 50},
		{"negative damage", 50, -10, 50},
		{"fractional", 10, 0.25, 9.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(KindRat, core.V(0, 0), 20, tc.health, 100)
			e.TakeDamage(tc.damage)
			assert.InDelta(t, tc.expected, e.Health, 1e-9)
		})
	}
}

func TestTakeDamageReportsDealt(t *testing.T) {
	e := New(KindRat, core.V(0, 0), 20, 30, 100)
	assert.InDelta(t, 30.0, e.TakeDamage(40), 1e-9)
	assert.False(t, e.Alive())
	assert.Zero(t, e.TakeDamage(5), "no damage past zero")
}

func TestDyingCountsAsAlive(t *testing.T) {
	e := New(KindBroodFly, core.V(0, 0), 40, 10, 100)
	e.TakeDamage(10)
	e.Dying = true
	assert.True(t, e.Alive())
	assert.True(t, e.Dead())
}

func TestHealCapsAtMax(t *testing.T) {
	e := New(KindPlayer, core.V(0, 0), 30, 100, 250)
	e.TakeDamage(20)
	assert.InDelta(t, 20.0, e.Heal(35), 1e-9)
	assert.InDelta(t, 100.0, e.Health, 1e-9)
}

func TestMoveTowardSlidesAlongWall(t *testing.T) {
	wall := []core.Rect{core.NewRect(100, -500, 20, 1000)}
	e := New(KindRat, core.V(80, 0), 20, 30, 100)

	blocked := MoveToward(&e, core.V(200, 100), 100, 0.5, wall)

	assert.True(t, blocked)
	assert.InDelta(t, 80.0, e.Pos.X, 1e-9, "X is blocked by the wall")
	assert.Greater(t, e.Pos.Y, 0.0, "Y still slides")
}

func TestMoveTowardZeroLengthIsNoOp(t *testing.T) {
	e := New(KindRat, core.V(10, 10), 20, 30, 100)
	assert.False(t, MoveToward(&e, core.V(10, 10), 100, 1, nil))
	assert.Equal(t, core.V(10, 10), e.Pos)
}

func TestMoveTowardNeverOverlapsObstacles(t *testing.T) {
	obstacles := []core.Rect{
		core.NewRect(100, 0, 20, 300),
		core.NewRect(0, 200, 300, 20),
		core.NewRect(150, 50, 40, 40),
	}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		e := New(KindRat, core.V(40+rng.Float64()*40, 40+rng.Float64()*100), 20, 30, 100)
		require.False(t, core.OverlapsAny(e.Box(), obstacles))
		target := core.V(rng.Float64()*400-50, rng.Float64()*400-50)

		for step := 0; step < 60; step++ {
			MoveToward(&e, target, 100+rng.Float64()*400, 1.0/60, obstacles)
			require.False(t, core.OverlapsAny(e.Box(), obstacles), "case %d step %d at %v", i, step, e.Pos)
		}
	}
}

func TestMoveAway(t *testing.T) {
	e := New(KindBedbug, core.V(10, 0), 30, 100, 180)
	MoveAway(&e, core.V(0, 0), 100, 0.1, nil)
	assert.InDelta(t, 20.0, e.Pos.X, 1e-9)
}

func TestPlayerPushbackSnapsToEdge(t *testing.T) {
	wall := []core.Rect{core.NewRect(100, -100, 50, 300)}
	p := NewPlayer(core.V(80, 0))

	p.MovePushback(core.V(1, 0), 250, 0.1, wall, core.Rect{})

	assert.InDelta(t, 100-PlayerSize/2, p.Pos.X, 1e-9, "flush against the wall")
	assert.False(t, core.OverlapsAny(p.Box(), wall))
}

func TestPlayerPushbackFromBelow(t *testing.T) {
	wall := []core.Rect{core.NewRect(-100, 0, 300, 20)}
	p := NewPlayer(core.V(0, 40))

	p.MovePushback(core.V(0, -1), 250, 0.1, wall, core.Rect{})

	assert.InDelta(t, 20+PlayerSize/2, p.Pos.Y, 1e-9)
}

func TestPlayerClampedToBounds(t *testing.T) {
	p := NewPlayer(core.V(20, 20))
	p.MovePushback(core.V(-1, -1), 250, 1, nil, core.NewRect(0, 0, 500, 500))

	assert.InDelta(t, PlayerSize/2, p.Pos.X, 1e-9)
	assert.InDelta(t, PlayerSize/2, p.Pos.Y, 1e-9)
}

func TestPlayerFaceToward(t *testing.T) {
	p := NewPlayer(core.V(0, 0))
	p.FaceToward(core.V(0, 10))
	assert.InDelta(t, 1.0, p.Facing.Y, 1e-9)

	p.FaceToward(core.V(0, 0))
	assert.InDelta(t, 1.0, p.Facing.Y, 1e-9, "degenerate aim keeps facing")
}

func TestPlaceSpawnSkipsBlockedCandidates(t *testing.T) {
	f := &Frame{Obstacles: []core.Rect{core.NewRect(0, 0, 100, 100)}}
	candidates := []core.Vec2{core.V(50, 50), core.V(60, 60), core.V(200, 200)}
	i := 0
	pick := func() core.Vec2 {
		p := candidates[i%len(candidates)]
		i++
		return p
	}

	pos, ok := f.PlaceSpawn(DefaultPlaceAttempts, 24, pick)
	require.True(t, ok)
	assert.Equal(t, core.V(200, 200), pos)
	assert.Equal(t, 3, i)
}

func TestPlaceSpawnGivesUp(t *testing.T) {
	f := &Frame{Obstacles: []core.Rect{core.NewRect(0, 0, 100, 100)}}
	calls := 0
	_, ok := f.PlaceSpawn(DefaultPlaceAttempts, 24, func() core.Vec2 {
		calls++
		return core.V(50, 50)
	})

	assert.False(t, ok)
	assert.Equal(t, DefaultPlaceAttempts, calls)
}

func TestPlaceSpawnRespectsBounds(t *testing.T) {
	f := &Frame{Bounds: core.NewRect(0, 0, 100, 100)}
	_, ok := f.PlaceSpawn(1, 24, func() core.Vec2 { return core.V(95, 50) })
	assert.False(t, ok)
}

func TestFrameTargetNilPlayer(t *testing.T) {
	f := &Frame{}
	_, ok := f.Target()
	assert.False(t, ok)
	assert.False(t, f.CanSee(core.V(0, 0)))
}
