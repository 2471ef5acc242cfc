package entity

import (
	"fmt"

	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/maze"
	"github.com/milk9111/mazerunner/prefabs"
	"github.com/milk9111/mazerunner/scene"
)

// BuiltWorld is the static geometry produced from a grid.
type BuiltWorld struct {
	Walls []ecs.Entity // row-major wall order
	Floor ecs.Entity
}

// BuildWorld places one wall volume per wall cell and a floor plane under the
// grid. Walls rest on the floor, so their center sits at half the wall height.
func BuildWorld(s scene.Scene, g *maze.Grid, specs *prefabs.Specs) (*BuiltWorld, error) {
	if g == nil {
		return nil, fmt.Errorf("world: nil grid")
	}
	cfg := withDefaults(specs)
	wallColor := prefabs.ColorOr(cfg.Wall.Color, common.WallColor)
	size := common.Vec3{X: cfg.Wall.Width, Y: cfg.Wall.Height, Z: cfg.Wall.Depth}

	built := &BuiltWorld{}
	for _, cell := range g.WallCells() {
		x, z := g.WorldCenter(cell.X, cell.Z)
		e, err := s.Add(scene.Wall{
			GridX:  cell.X,
			GridZ:  cell.Z,
			Center: common.Vec3{X: x, Y: size.Y / 2, Z: z},
			Size:   size,
			Color:  wallColor,
		})
		if err != nil {
			return nil, fmt.Errorf("world: add wall (%d,%d): %w", cell.X, cell.Z, err)
		}
		built.Walls = append(built.Walls, e)
	}

	floor, err := s.Add(scene.Floor{
		Width: cfg.Floor.Width,
		Depth: cfg.Floor.Depth,
		Color: prefabs.ColorOr(cfg.Floor.Color, common.FloorColor),
	})
	if err != nil {
		return nil, fmt.Errorf("world: add floor: %w", err)
	}
	built.Floor = floor

	return built, nil
}
