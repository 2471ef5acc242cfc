package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox3Intersects(t *testing.T) {
	wall := BoxFromCenter(Vec3{X: -5, Y: 1, Z: -5}, WallWidth, WallHeight, WallDepth)

	cases := []struct {
		name string
		box  Box3
		want bool
	}{
		{"same_box", wall, true},
		{"inside", BoxFromCenter(Vec3{X: -5, Y: 1, Z: -5}, 0.4, 1, 0.4), true},
		{"touching_face", BoxFromCenter(Vec3{X: -4, Y: 1, Z: -5}, 1, 2, 1), true},
		{"disjoint_x", BoxFromCenter(Vec3{X: -3, Y: 1, Z: -5}, 0.4, 1.8, 0.4), false},
		{"disjoint_z", BoxFromCenter(Vec3{X: -5, Y: 1, Z: -2}, 0.4, 1.8, 0.4), false},
		{"above", BoxFromCenter(Vec3{X: -5, Y: 4, Z: -5}, 1, 1, 1), false},
		{"empty", Box3{Min: Vec3{X: 1}, Max: Vec3{X: -1}}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, wall.Intersects(c.box))
			assert.Equal(t, c.want, c.box.Intersects(wall))
		})
	}
}

func TestVec3DistanceTo(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	assert.InDelta(t, 0, a.DistanceTo(a), 1e-12)
	assert.InDelta(t, 5, Vec3{}.DistanceTo(Vec3{X: 3, Z: 4}), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}
