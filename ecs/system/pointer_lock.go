package system

import (
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

// PointerLockSystem applies capture requests raised by input polling.
type PointerLockSystem struct{}

func NewPointerLockSystem() *PointerLockSystem { return &PointerLockSystem{} }

func (s *PointerLockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.PointerLockComponent.Kind(), func(_ ecs.Entity, input *component.Input, lock *component.PointerLock) {
		if input.UnlockRequested {
			lock.Locked = false
		} else if input.LockRequested {
			lock.Locked = true
		}
		input.LockRequested = false
		input.UnlockRequested = false
	})
}
