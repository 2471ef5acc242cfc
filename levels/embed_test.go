package levels

import (
	"testing"

	"github.com/milk9111/mazerunner/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultLevelMatchesBuiltIn(t *testing.T) {
	lvl, err := LoadLevelFromFS("maze")
	require.NoError(t, err)
	assert.Equal(t, "maze", lvl.Name)
	assert.Equal(t, 5, lvl.CoinCount)

	g, err := lvl.Grid()
	require.NoError(t, err)
	assert.Equal(t, maze.Default().String(), g.String())
}

func TestAllEmbeddedLevelsAreValid(t *testing.T) {
	names := Names()
	require.NotEmpty(t, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := LoadLevelFromFS(name)
			require.NoError(t, err)
			g, err := lvl.Grid()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(g.OpenInterior()), lvl.CoinCount)

			spawn, err := lvl.SpawnCell(g)
			require.NoError(t, err)
			assert.False(t, g.IsWall(spawn.X, spawn.Z))
		})
	}
}

func TestSpawnCell(t *testing.T) {
	g := maze.Default()

	spawn, err := (&Level{}).SpawnCell(g)
	require.NoError(t, err)
	assert.Equal(t, g.OpenInterior()[0], spawn, "no spawn picks the first open cell")

	spawn, err = (&Level{Spawn: &Cell{X: 3, Z: 1}}).SpawnCell(g)
	require.NoError(t, err)
	assert.Equal(t, maze.Point{X: 3, Z: 1}, spawn)

	for _, bad := range []Cell{{X: 0, Z: 0}, {X: 2, Z: 2}, {X: 10, Z: 1}, {X: -1, Z: 4}} {
		_, err := (&Level{Name: "bad", Spawn: &bad}).SpawnCell(g)
		assert.ErrorIs(t, err, ErrBadSpawn, "spawn %+v", bad)
	}

	closed, err := maze.FromInts([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)
	_, err = (&Level{}).SpawnCell(closed)
	assert.ErrorIs(t, err, ErrNoOpenCells)
}

func TestLoadMissingLevel(t *testing.T) {
	_, err := LoadLevelFromFS("nope.json")
	assert.Error(t, err)
}
