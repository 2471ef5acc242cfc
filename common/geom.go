package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec3 is a world-space position. Y is up.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo is the straight-line distance between two points.
func (v Vec3) DistanceTo(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Planar drops the height component, mapping X to X and Z to Y.
func (v Vec3) Planar() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

// Box3 is an axis-aligned box in world space.
type Box3 struct {
	Min Vec3
	Max Vec3
}

// BoxFromCenter builds a box from its center and full size.
func BoxFromCenter(center Vec3, w, h, d float64) Box3 {
	return Box3{
		Min: Vec3{X: center.X - w/2, Y: center.Y - h/2, Z: center.Z - d/2},
		Max: Vec3{X: center.X + w/2, Y: center.Y + h/2, Z: center.Z + d/2},
	}
}

// Footprint is the box projected onto the ground plane.
func (b Box3) Footprint() cp.BB {
	return cp.BB{L: b.Min.X, B: b.Min.Z, R: b.Max.X, T: b.Max.Z}
}

// Intersects reports whether two boxes overlap. Touching faces count as an
// intersection.
func (b Box3) Intersects(o Box3) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	if b.Max.Y < o.Min.Y || b.Min.Y > o.Max.Y {
		return false
	}
	return b.Footprint().Intersects(o.Footprint())
}

// Empty reports whether the box has a negative extent on any axis.
func (b Box3) Empty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b Box3) Center() Vec3 {
	return Vec3{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2, Z: (b.Min.Z + b.Max.Z) / 2}
}
