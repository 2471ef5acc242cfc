package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/mazerunner/ecs/component"
)

// Input polls keyboard and mouse into the player's input component.
type Input struct {
	lastX, lastY int
	tracking     bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update(in *component.Input, locked bool) {
	if in == nil {
		return
	}

	forward := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		forward -= 1
	}
	right := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		right += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		right -= 1
	}
	in.Forward = forward
	in.Right = right

	x, y := ebiten.CursorPosition()
	if locked && i.tracking {
		in.LookDX += float64(x - i.lastX)
		in.LookDY += float64(y - i.lastY)
	}
	i.lastX, i.lastY = x, y
	i.tracking = locked

	if !locked && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.LockRequested = true
	}
	if locked && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		in.UnlockRequested = true
	}
	in.DumpRequested = inpututil.IsKeyJustPressed(ebiten.KeyF9)
}

func syncCursor(locked bool) {
	want := ebiten.CursorModeVisible
	if locked {
		want = ebiten.CursorModeCaptured
	}
	if ebiten.CursorMode() != want {
		ebiten.SetCursorMode(want)
	}
}
