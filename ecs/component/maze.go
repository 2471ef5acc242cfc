package component

// WallVolume is a static box built from a wall cell. It never changes after
// the world is built.
type WallVolume struct {
	GridX  int
	GridZ  int
	Width  float64
	Height float64
	Depth  float64
}

var WallVolumeComponent = NewComponent[WallVolume]()

type Floor struct {
	Width float64
	Depth float64
}

var FloorComponent = NewComponent[Floor]()
