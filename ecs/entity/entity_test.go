package entity

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/maze"
	"github.com/milk9111/mazerunner/prefabs"
	"github.com/milk9111/mazerunner/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

func TestBuildWorldPlacesOneWallPerWallCell(t *testing.T) {
	w := ecs.NewWorld()
	s := scene.NewWorldScene(w)
	g := maze.Default()

	built, err := BuildWorld(s, g, nil)
	require.NoError(t, err)

	cells := g.WallCells()
	require.Len(t, built.Walls, len(cells))
	assert.Equal(t, len(cells), s.Count(component.MeshWall))
	assert.Equal(t, 1, s.Count(component.MeshFloor))

	for i, e := range built.Walls {
		vol, ok := ecs.Get(w, e, component.WallVolumeComponent.Kind())
		require.True(t, ok)
		assert.Equal(t, cells[i].X, vol.GridX)
		assert.Equal(t, cells[i].Z, vol.GridZ)
		assert.Equal(t, 1.0, vol.Width)
		assert.Equal(t, 2.0, vol.Height)
		assert.Equal(t, 1.0, vol.Depth)

		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		require.True(t, ok)
		assert.Equal(t, float64(vol.GridX)-5, tr.X)
		assert.Equal(t, 1.0, tr.Y)
		assert.Equal(t, float64(vol.GridZ)-5, tr.Z)
	}

	first, _ := ecs.Get(w, built.Walls[0], component.TransformComponent.Kind())
	assert.Equal(t, -5.0, first.X)
	assert.Equal(t, -5.0, first.Z)

	floor, ok := ecs.Get(w, built.Floor, component.FloorComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 100.0, floor.Width)
}

func TestBuildWorldUsesWallSpec(t *testing.T) {
	w := ecs.NewWorld()
	g, err := maze.FromInts([][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}})
	require.NoError(t, err)

	built, err := BuildWorld(scene.NewWorldScene(w), g, &prefabs.Specs{Wall: &prefabs.WallSpec{Height: 3}})
	require.NoError(t, err)
	require.Len(t, built.Walls, 8)

	tr, _ := ecs.Get(w, built.Walls[0], component.TransformComponent.Kind())
	assert.Equal(t, 1.5, tr.Y)
	assert.Equal(t, -1.5, tr.X)
}

func TestSpawnCoinsNeverOnWalls(t *testing.T) {
	g := maze.Default()
	for seed := int64(0); seed < 50; seed++ {
		w := ecs.NewWorld()
		coins, err := SpawnCoins(scene.NewWorldScene(w), g, 5, rand.New(rand.NewSource(seed)), nil)
		require.NoError(t, err)
		require.Len(t, coins, 5)

		for i, e := range coins {
			c, ok := ecs.Get(w, e, component.CoinComponent.Kind())
			require.True(t, ok)
			assert.False(t, g.IsWall(c.GridX, c.GridZ), "seed %d coin %d on wall", seed, i)
			assert.GreaterOrEqual(t, c.GridX, 1)
			assert.LessOrEqual(t, c.GridX, g.Cols()-2)
			assert.GreaterOrEqual(t, c.GridZ, 1)
			assert.LessOrEqual(t, c.GridZ, g.Rows()-2)
			assert.Equal(t, i, c.Order)

			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			wx, wz := g.WorldCenter(c.GridX, c.GridZ)
			assert.Equal(t, wx, tr.X)
			assert.Equal(t, wz, tr.Z)
			assert.Equal(t, 1.4, tr.Y)
		}
	}
}

func TestSpawnCoinsRejectsWallDraws(t *testing.T) {
	g := maze.Default()
	w := ecs.NewWorld()
	// Draws are offset by one: the first pair lands on wall (4,2), the second on (1,1).
	rng := &seqRand{vals: []int{3, 1, 0, 0}}
	coins, err := SpawnCoins(scene.NewWorldScene(w), g, 1, rng, nil)
	require.NoError(t, err)
	require.Len(t, coins, 1)

	c, _ := ecs.Get(w, coins[0], component.CoinComponent.Kind())
	assert.Equal(t, 1, c.GridX)
	assert.Equal(t, 1, c.GridZ)
	assert.Equal(t, 4, rng.i, "one rejected pair, one accepted pair")
}

func TestSpawnCoinsAllowsDuplicateCells(t *testing.T) {
	g := maze.Default()
	w := ecs.NewWorld()
	coins, err := SpawnCoins(scene.NewWorldScene(w), g, 3, &seqRand{vals: []int{0}}, nil)
	require.NoError(t, err)
	require.Len(t, coins, 3)
	for _, e := range coins {
		c, _ := ecs.Get(w, e, component.CoinComponent.Kind())
		assert.Equal(t, maze.Point{X: 1, Z: 1}, maze.Point{X: c.GridX, Z: c.GridZ})
	}
}

func TestSpawnCoinsFailsFastOnDegenerateGrid(t *testing.T) {
	solid, err := maze.FromInts([][]int{
		{1, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 1, 1},
	})
	require.NoError(t, err)

	w := ecs.NewWorld()
	s := scene.NewWorldScene(w)
	coins, err := SpawnCoins(s, solid, 5, rand.New(rand.NewSource(1)), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnoughOpenCells))
	assert.Nil(t, coins)
	assert.Equal(t, 0, s.Count(component.MeshCoin))

	coins, err = SpawnCoins(s, solid, 1, rand.New(rand.NewSource(1)), nil)
	require.NoError(t, err)
	assert.Len(t, coins, 1)
}

func TestSpawnCoinsZeroCount(t *testing.T) {
	coins, err := SpawnCoins(scene.NewWorldScene(ecs.NewWorld()), maze.Default(), 0, rand.New(rand.NewSource(1)), nil)
	assert.NoError(t, err)
	assert.Empty(t, coins)
}

func TestNewPlayerAt(t *testing.T) {
	w := ecs.NewWorld()
	g := maze.Default()
	e, err := NewPlayerAt(w, g, maze.Point{X: 1, Z: 1}, nil)
	require.NoError(t, err)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, -4.0, tr.X)
	assert.Equal(t, 1.6, tr.Y)
	assert.Equal(t, -4.0, tr.Z)

	lock, ok := ecs.Get(w, e, component.PointerLockComponent.Kind())
	require.True(t, ok)
	assert.False(t, lock.Locked)

	require.NoError(t, ApplyPlayerSpec(w, e, &prefabs.PlayerSpec{MoveSpeed: 0.2}))
	pc, _ := ecs.Get(w, e, component.PlayerControllerComponent.Kind())
	assert.Equal(t, 0.2, pc.MoveSpeed)
	assert.Equal(t, 0.002, pc.MouseSensitivity)
}

func TestNewGameStateAndCamera(t *testing.T) {
	w := ecs.NewWorld()
	gs, err := NewGameState(w, 5)
	require.NoError(t, err)
	counter, ok := ecs.Get(w, gs, component.CoinCounterComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 5, counter.Total)
	assert.False(t, counter.Won)

	cam, err := NewCamera(w, nil)
	require.NoError(t, err)
	c, ok := ecs.Get(w, cam, component.CameraComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 75.0, c.FOV)
	assert.InDelta(t, 16.0/9.0, c.Aspect, 1e-9)
}
