// Package scene places visual objects into the ECS world.
package scene

import (
	"fmt"

	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

// Object is anything that can be placed in a Scene.
type Object interface {
	Kind() component.MeshKind
	Position() common.Vec3
	Rotation() common.Vec3
	// Attach adds the kind-specific components to a freshly created entity.
	Attach(w *ecs.World, e ecs.Entity) error
}

// Scene adds and removes placed objects.
type Scene interface {
	Add(obj Object) (ecs.Entity, error)
	Remove(e ecs.Entity) bool
}

// WorldScene is a Scene backed by an ECS world.
type WorldScene struct {
	w *ecs.World
}

func NewWorldScene(w *ecs.World) *WorldScene {
	return &WorldScene{w: w}
}

func (s *WorldScene) Add(obj Object) (ecs.Entity, error) {
	if s == nil || s.w == nil {
		return 0, fmt.Errorf("scene: no world")
	}
	if obj == nil {
		return 0, fmt.Errorf("scene: nil object")
	}

	e := ecs.CreateEntity(s.w)
	pos := obj.Position()
	rot := obj.Rotation()
	if err := ecs.Add(s.w, e, component.TransformComponent.Kind(), &component.Transform{
		X: pos.X, Y: pos.Y, Z: pos.Z,
		RotationX: rot.X, RotationY: rot.Y, RotationZ: rot.Z,
	}); err != nil {
		ecs.DestroyEntity(s.w, e)
		return 0, fmt.Errorf("scene: add %s transform: %w", obj.Kind(), err)
	}
	if err := obj.Attach(s.w, e); err != nil {
		ecs.DestroyEntity(s.w, e)
		return 0, fmt.Errorf("scene: attach %s: %w", obj.Kind(), err)
	}
	return e, nil
}

// Remove destroys a placed object. It reports false if e was already gone.
func (s *WorldScene) Remove(e ecs.Entity) bool {
	if s == nil {
		return false
	}
	return ecs.DestroyEntity(s.w, e)
}

// Count returns how many live objects of kind the scene holds.
func (s *WorldScene) Count(kind component.MeshKind) int {
	if s == nil {
		return 0
	}
	n := 0
	ecs.ForEach(s.w, component.MeshComponent.Kind(), func(_ ecs.Entity, m *component.Mesh) {
		if m.Kind == kind {
			n++
		}
	})
	return n
}
