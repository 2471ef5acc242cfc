package scene

import (
	"testing"

	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldSceneAddRemove(t *testing.T) {
	w := ecs.NewWorld()
	s := NewWorldScene(w)

	wall, err := s.Add(Wall{GridX: 2, GridZ: 3, Center: common.Vec3{X: -3, Y: 1, Z: -2}, Size: common.Vec3{X: 1, Y: 2, Z: 1}})
	require.NoError(t, err)
	coin, err := s.Add(Coin{Center: common.Vec3{X: 1, Y: 1.4, Z: 1}, Radius: 0.2, CaptureRadius: 0.5, SpinSpeed: 0.1})
	require.NoError(t, err)
	_, err = s.Add(Floor{Width: 100, Depth: 100})
	require.NoError(t, err)

	assert.Equal(t, 1, s.Count(component.MeshWall))
	assert.Equal(t, 1, s.Count(component.MeshCoin))
	assert.Equal(t, 1, s.Count(component.MeshFloor))

	tr, ok := ecs.Get(w, wall, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, -3.0, tr.X)
	assert.Equal(t, 1.0, tr.Y)
	assert.Equal(t, -2.0, tr.Z)

	vol, ok := ecs.Get(w, wall, component.WallVolumeComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, 2, vol.GridX)
	assert.Equal(t, 2.0, vol.Height)

	assert.True(t, ecs.Has(w, coin, component.SpinComponent.Kind()))
	ctr, _ := ecs.Get(w, coin, component.TransformComponent.Kind())
	assert.InDelta(t, 1.5708, ctr.RotationX, 1e-4)

	assert.True(t, s.Remove(coin))
	assert.False(t, s.Remove(coin))
	assert.Equal(t, 0, s.Count(component.MeshCoin))
}

func TestWorldSceneRejectsNil(t *testing.T) {
	s := NewWorldScene(ecs.NewWorld())
	_, err := s.Add(nil)
	assert.Error(t, err)

	var empty *WorldScene
	_, err = empty.Add(Floor{})
	assert.Error(t, err)
}
