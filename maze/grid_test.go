package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInts(t *testing.T) {
	cases := []struct {
		name    string
		layout  [][]int
		wantErr error
	}{
		{"default", DefaultLayout, nil},
		{"empty", nil, ErrEmptyGrid},
		{"empty_row", [][]int{{}}, ErrEmptyGrid},
		{"ragged", [][]int{{1, 1, 1}, {1, 0}}, ErrNotRectangular},
		{"bad_value", [][]int{{1, 2}, {1, 1}}, ErrInvalidCell},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := FromInts(c.layout)
			if c.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, c.wantErr), "got %v", err)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(c.layout), g.Rows())
			assert.Equal(t, len(c.layout[0]), g.Cols())
		})
	}
}

func TestGridCopiesInput(t *testing.T) {
	layout := [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}
	g, err := FromInts(layout)
	require.NoError(t, err)

	layout[1][1] = 1
	assert.False(t, g.IsWall(1, 1))
}

func TestAtOutOfBoundsIsWall(t *testing.T) {
	g := Default()
	assert.True(t, g.IsWall(-1, 3))
	assert.True(t, g.IsWall(3, g.Rows()))
	assert.False(t, g.IsWall(1, 1))
}

func TestWorldCenter(t *testing.T) {
	g := Default()

	x, z := g.WorldCenter(0, 0)
	assert.Equal(t, -5.0, x)
	assert.Equal(t, -5.0, z)

	x, z = g.WorldCenter(9, 4)
	assert.Equal(t, 4.0, x)
	assert.Equal(t, -1.0, z)

	odd, err := FromInts([][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}})
	require.NoError(t, err)
	x, z = odd.WorldCenter(1, 1)
	assert.Equal(t, -0.5, x)
	assert.Equal(t, -0.5, z)
}

func TestCellAtRoundTrips(t *testing.T) {
	g := Default()
	for z := 0; z < g.Rows(); z++ {
		for x := 0; x < g.Cols(); x++ {
			wx, wz := g.WorldCenter(x, z)
			assert.Equal(t, Point{X: x, Z: z}, g.CellAt(wx, wz))
			assert.Equal(t, Point{X: x, Z: z}, g.CellAt(wx+0.49, wz-0.49))
		}
	}
}

func TestWallCellsRowMajor(t *testing.T) {
	g := Default()
	walls := g.WallCells()

	count := 0
	for _, row := range DefaultLayout {
		for _, v := range row {
			count += v
		}
	}
	require.Len(t, walls, count)
	assert.Equal(t, Point{X: 0, Z: 0}, walls[0])
	assert.Equal(t, Point{X: 9, Z: 9}, walls[len(walls)-1])
	for i := 1; i < len(walls); i++ {
		prev, cur := walls[i-1], walls[i]
		assert.True(t, prev.Z < cur.Z || (prev.Z == cur.Z && prev.X < cur.X))
	}
}

func TestOpenInterior(t *testing.T) {
	g := Default()
	open := g.OpenInterior()
	require.NotEmpty(t, open)
	for _, p := range open {
		assert.False(t, g.IsWall(p.X, p.Z))
		assert.GreaterOrEqual(t, p.X, 1)
		assert.LessOrEqual(t, p.X, g.Cols()-2)
		assert.GreaterOrEqual(t, p.Z, 1)
		assert.LessOrEqual(t, p.Z, g.Rows()-2)
	}

	solid, err := FromInts([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)
	assert.Empty(t, solid.OpenInterior())
}

func TestString(t *testing.T) {
	g, err := FromInts([][]int{{1, 1}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, "##\n.#\n", g.String())
}
