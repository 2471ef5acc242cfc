package entity

import (
	"fmt"

	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/maze"
	"github.com/milk9111/mazerunner/prefabs"
)

// NewPlayerAt creates the player standing in a grid cell, eyes at eye height.
func NewPlayerAt(w *ecs.World, g *maze.Grid, cell maze.Point, specs *prefabs.Specs) (ecs.Entity, error) {
	cfg := withDefaults(specs)
	x, z := g.WorldCenter(cell.X, cell.Z)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: cfg.Player.EyeHeight, Z: z}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerBodyComponent.Kind(), &component.PlayerBody{
		HalfWidth: cfg.Player.HalfWidth,
		Height:    cfg.Player.Height,
		EyeHeight: cfg.Player.EyeHeight,
	}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerControllerComponent.Kind(), &component.PlayerController{
		MoveSpeed:        cfg.Player.MoveSpeed,
		MouseSensitivity: cfg.Player.MouseSensitivity,
	}); err != nil {
		return 0, fmt.Errorf("player: add controller: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PointerLockComponent.Kind(), &component.PointerLock{}); err != nil {
		return 0, fmt.Errorf("player: add pointer lock: %w", err)
	}
	return e, nil
}

// ApplyPlayerSpec refreshes movement tuning on a live player, keeping its
// view angles.
func ApplyPlayerSpec(w *ecs.World, player ecs.Entity, spec *prefabs.PlayerSpec) error {
	cfg := withDefaults(&prefabs.Specs{Player: spec})
	pc, ok := ecs.Get(w, player, component.PlayerControllerComponent.Kind())
	if !ok {
		return fmt.Errorf("player: no controller on %v", player)
	}
	pc.MoveSpeed = cfg.Player.MoveSpeed
	pc.MouseSensitivity = cfg.Player.MouseSensitivity

	if body, ok := ecs.Get(w, player, component.PlayerBodyComponent.Kind()); ok {
		body.HalfWidth = cfg.Player.HalfWidth
		body.Height = cfg.Player.Height
		body.EyeHeight = cfg.Player.EyeHeight
	}
	return nil
}
