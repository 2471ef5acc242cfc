package component

import "image/color"

type MeshKind uint8

const (
	MeshWall MeshKind = iota + 1
	MeshFloor
	MeshCoin
)

func (k MeshKind) String() string {
	switch k {
	case MeshWall:
		return "wall"
	case MeshFloor:
		return "floor"
	case MeshCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Mesh marks an entity as a visible scene object. The renderer picks how to
// draw it from Kind.
type Mesh struct {
	Kind    MeshKind
	Color   color.RGBA
	Visible bool
}

var MeshComponent = NewComponent[Mesh]()
