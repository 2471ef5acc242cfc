package component

// Coin is a collectible marker. Being present on a live entity is what makes
// it part of the active coin set.
type Coin struct {
	GridX         int
	GridZ         int
	Radius        float64
	Tube          float64
	CaptureRadius float64
	// Order is the spawn index. Capture checks walk coins from the highest
	// order down.
	Order int
}

var CoinComponent = NewComponent[Coin]()

// Spin rotates an entity around its Y axis every tick.
type Spin struct {
	Speed float64
}

var SpinComponent = NewComponent[Spin]()
