package entity

import (
	"fmt"

	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/prefabs"
)

func NewCamera(w *ecs.World, specs *prefabs.Specs) (ecs.Entity, error) {
	cfg := withDefaults(specs)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Y: cfg.Player.EyeHeight}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		FOV:       cfg.Camera.FOV,
		Aspect:    float64(common.BaseWidth) / float64(common.BaseHeight),
		Near:      cfg.Camera.Near,
		Far:       cfg.Camera.Far,
		ViewportW: common.BaseWidth,
		ViewportH: common.BaseHeight,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return e, nil
}
