package system

import (
	"sort"

	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/control"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/scene"
)

// CollisionSystem resolves the player against walls and coins once per tick.
//
// Walls are checked in the order they were built. Every overlapping wall
// pushes the player back by a fixed nudge on both view axes; there is no
// penetration depth and no iteration. Coins are checked from the last
// spawned down, and any coin closer than its capture radius is removed and
// counted.
type CollisionSystem struct {
	controls control.Controls
	scene    scene.Scene
	walls    []ecs.Entity
	nudge    float64
}

func NewCollisionSystem(controls control.Controls, s scene.Scene, walls []ecs.Entity, nudge float64) *CollisionSystem {
	if nudge == 0 {
		nudge = common.WallNudge
	}
	return &CollisionSystem{
		controls: controls,
		scene:    s,
		walls:    append([]ecs.Entity(nil), walls...),
		nudge:    nudge,
	}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil || s.controls == nil || !s.controls.IsLocked() {
		return
	}

	s.resolveWalls(w)
	s.collectCoins(w)
}

func (s *CollisionSystem) resolveWalls(w *ecs.World) {
	playerBox := s.controls.Bounds()
	if playerBox.Empty() {
		return
	}

	for _, wall := range s.walls {
		vol, ok := ecs.Get(w, wall, component.WallVolumeComponent.Kind())
		if !ok {
			continue
		}
		t, ok := ecs.Get(w, wall, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		wallBox := common.BoxFromCenter(common.Vec3{X: t.X, Y: t.Y, Z: t.Z}, vol.Width, vol.Height, vol.Depth)
		if !playerBox.Intersects(wallBox) {
			continue
		}

		s.controls.MoveRight(-s.nudge)
		s.controls.MoveForward(-s.nudge)
		w.Events().Push(ecs.Event{Type: ecs.EventWallContact, Data: ecs.WallContactEvent{Wall: wall}})
	}
}

type activeCoin struct {
	e      ecs.Entity
	order  int
	pos    common.Vec3
	radius float64
}

func (s *CollisionSystem) collectCoins(w *ecs.World) {
	var coins []activeCoin
	ecs.ForEach2(w, component.CoinComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Coin, t *component.Transform) {
		radius := c.CaptureRadius
		if radius <= 0 {
			radius = common.DefaultCaptureRadius
		}
		coins = append(coins, activeCoin{e: e, order: c.Order, pos: common.Vec3{X: t.X, Y: t.Y, Z: t.Z}, radius: radius})
	})
	if len(coins) == 0 {
		return
	}
	sort.SliceStable(coins, func(i, j int) bool { return coins[i].order < coins[j].order })

	var counter *component.CoinCounter
	if e, ok := ecs.First(w, component.CoinCounterComponent.Kind()); ok {
		counter, _ = ecs.Get(w, e, component.CoinCounterComponent.Kind())
	}

	for i := len(coins) - 1; i >= 0; i-- {
		coin := coins[i]
		if s.controls.Position().DistanceTo(coin.pos) >= coin.radius {
			continue
		}
		if !s.scene.Remove(coin.e) {
			continue
		}
		if counter == nil {
			continue
		}

		won := counter.Collect()
		w.Events().Push(ecs.Event{Type: ecs.EventCoinCollected, Data: ecs.CoinCollectedEvent{
			Coin:      coin.e,
			Collected: counter.Collected,
			Total:     counter.Total,
		}})
		if won {
			w.Events().Push(ecs.Event{Type: ecs.EventGameWon})
		}
	}
}
