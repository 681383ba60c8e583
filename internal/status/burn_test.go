package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advanceFor(b *Burn, seconds, dt float64) {
	for t := 0.0; t < seconds; t += dt {
		b.Advance(dt)
	}
}

func TestBurnStartIsNoOpWhileActive(t *testing.T) {
	var b Burn
	b.Start()
	require.Equal(t, BurnIgniting, b.Phase)

	b.Advance(0.2)
	frame := b.Frame
	b.Start()
	assert.Equal(t, BurnIgniting, b.Phase)
	assert.Equal(t, frame, b.Frame, "restarting must not reset the frame")
}

func TestBurnIgnitesIntoLoop(t *testing.T) {
	var b Burn
	b.Start()
	for i := 0; i < IgniteFrames-1; i++ {
		b.Advance(0.1)
		assert.Equal(t, BurnIgniting, b.Phase, "frame %d", i+1)
	}
	b.Advance(0.1)
	assert.Equal(t, BurnLooping, b.Phase)
	assert.Equal(t, 0, b.Frame)
}

func TestBurnLoopNeverSelfTerminates(t *testing.T) {
	var b Burn
	b.Start()
	advanceFor(&b, IgniteDuration+LoopFrames/BurnFrameRate*10, 1.0/60)

	assert.Equal(t, BurnLooping, b.Phase)
	assert.Less(t, b.Frame, LoopFrames)
	assert.GreaterOrEqual(t, b.Frame, 0)
}

func TestBurnStopExtinguishesToInactive(t *testing.T) {
	var b Burn
	b.Start()
	advanceFor(&b, 1.0, 0.1)
	require.Equal(t, BurnLooping, b.Phase)

	b.Stop()
	require.Equal(t, BurnExtinguishing, b.Phase)
	assert.True(t, b.Active(), "extinguishing still counts as active")

	b.Stop()
	assert.Equal(t, 0, b.Frame, "second stop is a no-op")

	for i := 0; i < ExtinguishFrames; i++ {
		b.Advance(0.1)
	}
	assert.Equal(t, BurnNone, b.Phase)
	assert.False(t, b.Active())
}

func TestBurnStopWhenInactiveIsNoOp(t *testing.T) {
	var b Burn
	b.Stop()
	assert.Equal(t, BurnNone, b.Phase)
}

func TestBurnLargeStepCatchesUp(t *testing.T) {
	var b Burn
	b.Start()
	b.Advance(1.0)
	assert.Equal(t, BurnLooping, b.Phase)

	b.Advance(0.95)
	assert.Equal(t, BurnLooping, b.Phase)
	assert.Equal(t, 9%LoopFrames, b.Frame)
}

func TestBurnTickDealsDamageUntilExtinguished(t *testing.T) {
	var b Burn
	started := b.Ignite(6, 0.5)
	require.True(t, started)

	var total float64
	ticks := 0
	for b.Active() && ticks < 100 {
		total += b.Tick(0.1)
		ticks++
	}

	assert.False(t, b.Active())
	// 0.5s of timed burn plus the extinguish animation, all at 6 dps.
	assert.InDelta(t, 6*(0.5+ExtinguishDuration), total, 6*0.1+1e-9)
}

func TestBurnIgniteRefreshesTimer(t *testing.T) {
	var b Burn
	b.Ignite(6, 4)
	b.Tick(0.1)
	b.Tick(0.1)

	assert.False(t, b.Ignite(8, 4), "already burning")
	assert.InDelta(t, 4.0, b.Remaining, 1e-9)
	assert.InDelta(t, 8.0, b.DPS, 1e-9)
}

func TestBurnReignitesAfterExtinguishWithTimeLeft(t *testing.T) {
	var b Burn
	b.Ignite(6, 4)
	b.Tick(0.1)
	b.Stop()
	for i := 0; i < ExtinguishFrames; i++ {
		b.Advance(0.1)
	}
	require.Equal(t, BurnNone, b.Phase)

	b.Tick(0.1)
	assert.Equal(t, BurnIgniting, b.Phase)
}

func TestBurnExtinguishClearsTimer(t *testing.T) {
	var b Burn
	b.Ignite(6, 4)
	b.Extinguish()

	assert.Zero(t, b.Remaining)
	assert.Equal(t, BurnExtinguishing, b.Phase)
}
