package component

// Transform places an entity in world space. Y is up. Rotation is Euler
// radians around each axis.
type Transform struct {
	X         float64
	Y         float64
	Z         float64
	RotationX float64
	RotationY float64
	RotationZ float64
}

var TransformComponent = NewComponent[Transform]()
