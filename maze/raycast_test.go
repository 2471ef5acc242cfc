package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastRay(t *testing.T) {
	g := Default()
	// Cell (1,1) sits at world (-4,-4).
	ox, oz := g.WorldCenter(1, 1)

	cases := []struct {
		name     string
		dirX     float64
		dirZ     float64
		wantCell Point
		wantSide Side
		wantDist float64
	}{
		{"west", -1, 0, Point{X: 0, Z: 1}, SideX, 0.5},
		{"north", 0, -1, Point{X: 1, Z: 0}, SideZ, 0.5},
		{"east", 1, 0, Point{X: 4, Z: 1}, SideX, 2.5},
		{"south", 0, 1, Point{X: 1, Z: 6}, SideZ, 4.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			hit, ok := g.CastRay(ox, oz, c.dirX, c.dirZ, 100)
			require.True(t, ok)
			assert.Equal(t, c.wantCell, hit.Cell)
			assert.Equal(t, c.wantSide, hit.Side)
			assert.InDelta(t, c.wantDist, hit.Distance, 1e-9)
		})
	}
}

func TestCastRayLimits(t *testing.T) {
	g := Default()
	ox, oz := g.WorldCenter(1, 1)

	_, ok := g.CastRay(ox, oz, 1, 0, 1)
	assert.False(t, ok, "wall at 2.5 is beyond maxDist")

	_, ok = g.CastRay(ox, oz, 0, 0, 100)
	assert.False(t, ok)

	open, err := FromInts([][]int{{0, 0}, {0, 0}})
	require.NoError(t, err)
	_, ok = open.CastRay(0, 0, 1, 0.3, 100)
	assert.False(t, ok, "ray leaves a grid without walls")
}
