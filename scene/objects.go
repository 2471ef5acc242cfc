package scene

import (
	"image/color"
	"math"

	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

type Wall struct {
	GridX, GridZ int
	Center       common.Vec3
	Size         common.Vec3
	Color        color.RGBA
}

func (o Wall) Kind() component.MeshKind { return component.MeshWall }
func (o Wall) Position() common.Vec3    { return o.Center }
func (o Wall) Rotation() common.Vec3    { return common.Vec3{} }

func (o Wall) Attach(w *ecs.World, e ecs.Entity) error {
	if err := ecs.Add(w, e, component.WallVolumeComponent.Kind(), &component.WallVolume{
		GridX:  o.GridX,
		GridZ:  o.GridZ,
		Width:  o.Size.X,
		Height: o.Size.Y,
		Depth:  o.Size.Z,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.MeshComponent.Kind(), &component.Mesh{Kind: component.MeshWall, Color: o.Color, Visible: true})
}

// Floor is a horizontal plane at y=0.
type Floor struct {
	Width, Depth float64
	Color        color.RGBA
}

func (o Floor) Kind() component.MeshKind { return component.MeshFloor }
func (o Floor) Position() common.Vec3    { return common.Vec3{} }
func (o Floor) Rotation() common.Vec3    { return common.Vec3{X: -math.Pi / 2} }

func (o Floor) Attach(w *ecs.World, e ecs.Entity) error {
	if err := ecs.Add(w, e, component.FloorComponent.Kind(), &component.Floor{Width: o.Width, Depth: o.Depth}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.MeshComponent.Kind(), &component.Mesh{Kind: component.MeshFloor, Color: o.Color, Visible: true})
}

type Coin struct {
	GridX, GridZ  int
	Center        common.Vec3
	Radius        float64
	Tube          float64
	CaptureRadius float64
	SpinSpeed     float64
	Order         int
	Color         color.RGBA
}

func (o Coin) Kind() component.MeshKind { return component.MeshCoin }
func (o Coin) Position() common.Vec3    { return o.Center }

// Rotation stands the torus upright.
func (o Coin) Rotation() common.Vec3 { return common.Vec3{X: math.Pi / 2} }

func (o Coin) Attach(w *ecs.World, e ecs.Entity) error {
	if err := ecs.Add(w, e, component.CoinComponent.Kind(), &component.Coin{
		GridX:         o.GridX,
		GridZ:         o.GridZ,
		Radius:        o.Radius,
		Tube:          o.Tube,
		CaptureRadius: o.CaptureRadius,
		Order:         o.Order,
	}); err != nil {
		return err
	}
	if o.SpinSpeed != 0 {
		if err := ecs.Add(w, e, component.SpinComponent.Kind(), &component.Spin{Speed: o.SpinSpeed}); err != nil {
			return err
		}
	}
	return ecs.Add(w, e, component.MeshComponent.Kind(), &component.Mesh{Kind: component.MeshCoin, Color: o.Color, Visible: true})
}
