package system

import (
	"github.com/milk9111/mazerunner/control"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

// CameraSystem keeps the camera at the player's eye, looking where the
// player looks.
type CameraSystem struct {
	controls  *control.PointerLockControls
	camEntity ecs.Entity
}

func NewCameraSystem(controls *control.PointerLockControls) *CameraSystem {
	return &CameraSystem{controls: controls}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || cs.controls == nil {
		return
	}

	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	pos := cs.controls.Position()
	t.X, t.Y, t.Z = pos.X, pos.Y, pos.Z
	cam.Yaw = cs.controls.Yaw()
	cam.Pitch = cs.controls.Pitch()
	t.RotationY = cam.Yaw
	t.RotationX = cam.Pitch
}
