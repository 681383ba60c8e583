package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/infestation/internal/core"
)

func TestBusDispatchesByType(t *testing.T) {
	bus := NewBus()

	var hits, all int
	bus.Subscribe(Hit, ListenerFunc(func(Event) { hits++ }))
	bus.SubscribeAll(ListenerFunc(func(Event) { all++ }))

	bus.Emit(Hit, core.V(1, 1), "rifle")
	bus.Emit(Death, core.V(2, 2), "rat")

	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, all)
	assert.Equal(t, 2, bus.Pending())
}

func TestBusDistanceFromListener(t *testing.T) {
	bus := NewBus()
	bus.Emit(Explode, core.V(3, 4), "plasma")

	bus.SetListener(core.V(0, 0))
	bus.SetTick(7)
	bus.EmitDetail(WeaponState, core.V(3, 4), "minigun", "spinning")

	events := bus.Drain()
	require.Len(t, events, 2)
	assert.False(t, events[0].HasDistance)
	assert.True(t, events[1].HasDistance)
	assert.InDelta(t, 5.0, events[1].Distance, 1e-9)
	assert.Equal(t, 7, events[1].Tick)
	assert.Equal(t, "spinning", events[1].Detail)
	assert.Zero(t, bus.Pending())
}

func TestNilBusIgnoresEmit(t *testing.T) {
	var bus *Bus
	assert.NotPanics(t, func() { bus.Emit(Hit, core.V(0, 0), "x") })
}
