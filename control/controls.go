// Package control exposes the player pose to game systems the way a
// pointer-lock first-person controller does: read position and bounds, nudge
// along the view axes, and toggle input capture.
package control

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

// Controls is the player-control surface the collision system consumes.
type Controls interface {
	Position() common.Vec3
	Bounds() common.Box3
	MoveForward(distance float64)
	MoveRight(distance float64)
	IsLocked() bool
}

// PointerLockControls drives the player entity in a world.
type PointerLockControls struct {
	w      *ecs.World
	player ecs.Entity
}

// New binds controls to the first entity tagged as the player.
func New(w *ecs.World) *PointerLockControls {
	c := &PointerLockControls{w: w}
	if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		c.player = e
	}
	return c
}

// Player returns the controlled entity.
func (c *PointerLockControls) Player() ecs.Entity {
	return c.player
}

func (c *PointerLockControls) transform() *component.Transform {
	if c == nil {
		return nil
	}
	t, _ := ecs.Get(c.w, c.player, component.TransformComponent.Kind())
	return t
}

func (c *PointerLockControls) controller() *component.PlayerController {
	if c == nil {
		return nil
	}
	pc, _ := ecs.Get(c.w, c.player, component.PlayerControllerComponent.Kind())
	return pc
}

// Position is the eye position in world space.
func (c *PointerLockControls) Position() common.Vec3 {
	t := c.transform()
	if t == nil {
		return common.Vec3{}
	}
	return common.Vec3{X: t.X, Y: t.Y, Z: t.Z}
}

// SetPosition teleports the player.
func (c *PointerLockControls) SetPosition(p common.Vec3) {
	t := c.transform()
	if t == nil {
		return
	}
	t.X, t.Y, t.Z = p.X, p.Y, p.Z
}

// Bounds is the player's collision box. The box spans from the feet
// (eye minus eye height) up to the body height.
func (c *PointerLockControls) Bounds() common.Box3 {
	t := c.transform()
	if t == nil {
		return common.Box3{Min: common.Vec3{X: 1, Y: 1, Z: 1}}
	}
	body := component.PlayerBody{
		HalfWidth: common.DefaultPlayerHalfW,
		Height:    common.DefaultPlayerHeight,
		EyeHeight: common.DefaultEyeHeight,
	}
	if b, ok := ecs.Get(c.w, c.player, component.PlayerBodyComponent.Kind()); ok {
		body = *b
	}
	feet := t.Y - body.EyeHeight
	return common.Box3{
		Min: common.Vec3{X: t.X - body.HalfWidth, Y: feet, Z: t.Z - body.HalfWidth},
		Max: common.Vec3{X: t.X + body.HalfWidth, Y: feet + body.Height, Z: t.Z + body.HalfWidth},
	}
}

// Yaw returns the horizontal view angle. Zero looks down -Z.
func (c *PointerLockControls) Yaw() float64 {
	if pc := c.controller(); pc != nil {
		return pc.Yaw
	}
	return 0
}

// Pitch returns the vertical view angle.
func (c *PointerLockControls) Pitch() float64 {
	if pc := c.controller(); pc != nil {
		return pc.Pitch
	}
	return 0
}

// Forward is the view direction projected onto the ground plane, as (x, z).
func Forward(yaw float64) cp.Vector {
	return cp.Vector{X: -math.Sin(yaw), Y: -math.Cos(yaw)}
}

// Right is the camera's right vector on the ground plane, as (x, z).
func Right(yaw float64) cp.Vector {
	return cp.ForAngle(-yaw)
}

// MoveForward moves along the view direction, ignoring pitch.
func (c *PointerLockControls) MoveForward(distance float64) {
	c.movePlanar(Forward(c.Yaw()).Mult(distance))
}

// MoveRight strafes along the camera's right vector.
func (c *PointerLockControls) MoveRight(distance float64) {
	c.movePlanar(Right(c.Yaw()).Mult(distance))
}

func (c *PointerLockControls) movePlanar(delta cp.Vector) {
	t := c.transform()
	if t == nil {
		return
	}
	t.X += delta.X
	t.Z += delta.Y
}

// Rotate applies a look delta. Pitch stays strictly inside (-pi/2, pi/2).
func (c *PointerLockControls) Rotate(dYaw, dPitch float64) {
	pc := c.controller()
	if pc == nil {
		return
	}
	const limit = math.Pi/2 - 1e-3
	pc.Yaw = math.Mod(pc.Yaw+dYaw, 2*math.Pi)
	pc.Pitch = common.Clamp(pc.Pitch+dPitch, -limit, limit)
}

func (c *PointerLockControls) lockState() *component.PointerLock {
	if c == nil {
		return nil
	}
	if l, ok := ecs.Get(c.w, c.player, component.PointerLockComponent.Kind()); ok {
		return l
	}
	return nil
}

func (c *PointerLockControls) IsLocked() bool {
	l := c.lockState()
	return l != nil && l.Locked
}

// Lock begins input capture.
func (c *PointerLockControls) Lock() {
	if l := c.lockState(); l != nil {
		l.Locked = true
	}
}

// Unlock releases input capture.
func (c *PointerLockControls) Unlock() {
	if l := c.lockState(); l != nil {
		l.Locked = false
	}
}
