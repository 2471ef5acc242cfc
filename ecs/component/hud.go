package component

// HUD holds the two display strings drawn over the scene.
type HUD struct {
	CoinsText string
	Message   string

	// RenderedCollected is the counter value the texts were last built from.
	// -1 forces a rebuild.
	RenderedCollected int
	RenderedWon       bool
}

var HUDComponent = NewComponent[HUD]()
