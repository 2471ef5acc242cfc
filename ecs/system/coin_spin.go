package system

import (
	"math"

	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

type CoinSpinSystem struct{}

func NewCoinSpinSystem() *CoinSpinSystem { return &CoinSpinSystem{} }

func (s *CoinSpinSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.SpinComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, spin *component.Spin, t *component.Transform) {
		t.RotationY = math.Mod(t.RotationY+spin.Speed, 2*math.Pi)
	})
}
