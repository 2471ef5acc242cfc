package component

// Input stores per-tick input state for an entity.
type Input struct {
	Forward float64 // -1 back, +1 forward
	Right   float64 // -1 left, +1 right
	LookDX  float64
	LookDY  float64

	LockRequested   bool
	UnlockRequested bool
	DumpRequested   bool
}

var InputComponent = NewComponent[Input]()

// PointerLock reports whether input is captured. Player movement and
// collision only run while Locked is true.
type PointerLock struct {
	Locked bool
}

var PointerLockComponent = NewComponent[PointerLock]()
