package ecs

import (
	"testing"

	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addWall(t *testing.T, w *World, x, z int, withTransform bool) Entity {
	t.Helper()
	e := CreateEntity(w)
	require.NoError(t, Add(w, e, component.WallVolumeComponent.Kind(), &component.WallVolume{GridX: x, GridZ: z, Width: 1, Height: 2, Depth: 1}))
	if withTransform {
		require.NoError(t, Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: float64(x), Y: 1, Z: float64(z)}))
	}
	return e
}

func addCoin(t *testing.T, w *World, order int, spinning bool) Entity {
	t.Helper()
	e := CreateEntity(w)
	require.NoError(t, Add(w, e, component.CoinComponent.Kind(), &component.Coin{Order: order, CaptureRadius: 0.5}))
	require.NoError(t, Add(w, e, component.TransformComponent.Kind(), &component.Transform{Y: 1.4}))
	if spinning {
		require.NoError(t, Add(w, e, component.SpinComponent.Kind(), &component.Spin{Speed: 0.02}))
	}
	return e
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name    string
		create  int
		destroy []int
		alive   int
	}{
		{"single wall", 1, nil, 1},
		{"collect middle coin", 3, []int{1}, 2},
		{"collect every coin", 3, []int{2, 0, 1}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, c.create)
			for i := range ents {
				ents[i] = CreateEntity(w)
			}
			for _, i := range c.destroy {
				require.True(t, DestroyEntity(w, ents[i]))
				assert.False(t, IsAlive(w, ents[i]))
			}
			assert.Len(t, Entities(w), c.alive)
		})
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	coin := addCoin(t, w, 0, true)
	assert.Equal(t, "1v0", coin.String())

	require.True(t, DestroyEntity(w, coin))
	assert.False(t, DestroyEntity(w, coin), "second destroy reports the stale handle")

	next := CreateEntity(w)
	assert.Equal(t, coin.id(), next.id(), "slot is reused")
	assert.NotEqual(t, coin, next)
	assert.Equal(t, "1v1", next.String())
	assert.False(t, Has(w, next, component.CoinComponent.Kind()), "components do not survive destroy")

	err := Add(w, coin, component.TransformComponent.Kind(), &component.Transform{})
	assert.ErrorIs(t, err, component.ErrEntityNotAlive)
	assert.Equal(t, "none", Entity(0).String())
}

func TestAddGetRemoveGameComponents(t *testing.T) {
	w := NewWorld()
	wall := addWall(t, w, 4, 2, true)

	vol, ok := Get(w, wall, component.WallVolumeComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 4, vol.GridX)
	assert.Equal(t, 2, vol.GridZ)

	// Add replaces in place.
	require.NoError(t, Add(w, wall, component.TransformComponent.Kind(), &component.Transform{X: -1, Y: 1, Z: -3}))
	tr, ok := Get(w, wall, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, -1.0, tr.X)
	assert.Len(t, Query(w, component.TransformComponent.Kind()), 1)

	assert.True(t, Remove(w, wall, component.TransformComponent.Kind()))
	assert.False(t, Has(w, wall, component.TransformComponent.Kind()))
	assert.True(t, Has(w, wall, component.WallVolumeComponent.Kind()))
	assert.False(t, Remove(w, wall, component.CoinComponent.Kind()), "never had one")
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	err := Add[component.Coin](w, e, component.CoinComponent.Kind(), nil)
	assert.ErrorIs(t, err, component.ErrNilComponent)
	assert.Contains(t, err.Error(), "Coin#")

	var zero component.ComponentKind[component.Coin]
	assert.ErrorIs(t, Add(w, e, zero, &component.Coin{}), component.ErrInvalidComponentKind)
	assert.ErrorIs(t, Add(nil, e, component.CoinComponent.Kind(), &component.Coin{}), component.ErrEntityNotAlive)
}

func TestForEach2VisitsWallsWithTransforms(t *testing.T) {
	w := NewWorld()
	a := addWall(t, w, 0, 0, true)
	addWall(t, w, 1, 0, false)
	c := addWall(t, w, 2, 0, true)

	var got []Entity
	ForEach2(w, component.WallVolumeComponent.Kind(), component.TransformComponent.Kind(), func(e Entity, v *component.WallVolume, tr *component.Transform) {
		assert.Equal(t, float64(v.GridX), tr.X)
		got = append(got, e)
	})
	assert.Equal(t, []Entity{a, c}, got, "build order kept, wall without transform skipped")
}

func TestForEach3SkipsCollectedAndIncompleteCoins(t *testing.T) {
	w := NewWorld()
	first := addCoin(t, w, 0, true)
	collected := addCoin(t, w, 1, true)
	addCoin(t, w, 2, false)
	last := addCoin(t, w, 3, true)
	addWall(t, w, 0, 0, true)

	require.True(t, DestroyEntity(w, collected))

	var orders []int
	var got []Entity
	ForEach3(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), component.SpinComponent.Kind(),
		func(e Entity, c *component.Coin, _ *component.Transform, _ *component.Spin) {
			orders = append(orders, c.Order)
			got = append(got, e)
		})
	assert.ElementsMatch(t, []int{0, 3}, orders)
	assert.ElementsMatch(t, []Entity{first, last}, got)
}

func TestForEachAllowsDestroyDuringCapture(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		addCoin(t, w, i, true)
	}

	visited := 0
	ForEach(w, component.CoinComponent.Kind(), func(e Entity, _ *component.Coin) {
		visited++
		DestroyEntity(w, e)
	})
	assert.Equal(t, 5, visited)
	assert.Empty(t, Query(w, component.CoinComponent.Kind()))
	assert.Empty(t, Entities(w))
}

func TestFirstFindsGameState(t *testing.T) {
	w := NewWorld()
	_, ok := First(w, component.CoinCounterComponent.Kind())
	assert.False(t, ok)

	addWall(t, w, 0, 0, true)
	state := CreateEntity(w)
	require.NoError(t, Add(w, state, component.CoinCounterComponent.Kind(), component.NewCoinCounter(5)))

	got, ok := First(w, component.CoinCounterComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, state, got)

	counter, ok := Get(w, got, component.CoinCounterComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 5, counter.Total)
}

type recordingSystem struct {
	name  string
	calls *[]string
	emit  string
}

func (s recordingSystem) Update(w *World) {
	*s.calls = append(*s.calls, s.name)
	if s.emit != "" {
		w.Events().Push(Event{Type: s.emit})
	}
}

func TestSchedulerStepRunsInOrderAndDrains(t *testing.T) {
	var calls []string
	s := NewScheduler(
		recordingSystem{name: "controller", calls: &calls},
		nil,
		recordingSystem{name: "collision", calls: &calls, emit: EventCoinCollected},
	)
	s.Add(recordingSystem{name: "hud", calls: &calls})
	assert.Equal(t, 3, s.Len(), "nil systems dropped")

	w := NewWorld()
	s.Update(w)
	assert.Equal(t, uint64(0), s.Frames(), "settle update is not a frame")
	assert.Equal(t, 1, w.Events().Len())
	w.Events().Drain()

	events := s.Step(w)
	assert.Equal(t, []string{"controller", "collision", "hud", "controller", "collision", "hud"}, calls)
	require.Len(t, events, 1)
	assert.Equal(t, EventCoinCollected, events[0].Type)
	assert.Equal(t, 0, w.Events().Len())
	assert.Equal(t, uint64(1), s.Frames())
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventCoinCollected, Data: CoinCollectedEvent{Collected: 5, Total: 5}})
	q.Push(Event{Type: EventGameWon})
	assert.Equal(t, 2, q.Len())

	got := q.Drain()
	require.Len(t, got, 2)
	assert.Equal(t, EventCoinCollected, got[0].Type)
	assert.Equal(t, EventGameWon, got[1].Type)
	assert.Nil(t, q.Drain())

	var nilQueue *EventQueue
	nilQueue.Push(Event{Type: EventGameWon})
	assert.Equal(t, 0, nilQueue.Len())
}
