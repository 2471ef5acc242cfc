package system

import (
	"math"

	"github.com/milk9111/mazerunner/control"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

// PlayerControllerSystem turns the player's input into view rotation and
// planar movement. It does nothing while input is not captured.
type PlayerControllerSystem struct {
	controls *control.PointerLockControls
}

func NewPlayerControllerSystem(controls *control.PointerLockControls) *PlayerControllerSystem {
	return &PlayerControllerSystem{controls: controls}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil || s.controls == nil {
		return
	}

	player := s.controls.Player()
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}
	pc, ok := ecs.Get(w, player, component.PlayerControllerComponent.Kind())
	if !ok {
		return
	}

	// Look deltas are per-frame; drop them whether or not they were applied.
	dx, dy := input.LookDX, input.LookDY
	input.LookDX, input.LookDY = 0, 0

	if !s.controls.IsLocked() {
		return
	}

	if dx != 0 || dy != 0 {
		s.controls.Rotate(-dx*pc.MouseSensitivity, -dy*pc.MouseSensitivity)
	}

	forward, right := input.Forward, input.Right
	if forward != 0 && right != 0 {
		forward /= math.Sqrt2
		right /= math.Sqrt2
	}
	if forward != 0 {
		s.controls.MoveForward(forward * pc.MoveSpeed)
	}
	if right != 0 {
		s.controls.MoveRight(right * pc.MoveSpeed)
	}
}
