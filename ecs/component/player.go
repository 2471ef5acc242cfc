package component

// PlayerBody describes the player's collision box relative to the eye.
type PlayerBody struct {
	HalfWidth float64
	Height    float64
	EyeHeight float64
}

var PlayerBodyComponent = NewComponent[PlayerBody]()

// PlayerController holds movement tuning and the current view angles.
type PlayerController struct {
	MoveSpeed        float64
	MouseSensitivity float64
	Yaw              float64
	Pitch            float64
}

var PlayerControllerComponent = NewComponent[PlayerController]()
