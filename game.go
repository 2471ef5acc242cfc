package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs/render"
	"github.com/milk9111/mazerunner/prefabs"
	"github.com/milk9111/mazerunner/session"
)

type Game struct {
	frames int

	session  *session.GameSession
	input    *Input
	renderer *render.RenderSystem
	hud      *render.HUDRenderer
	overlay  *ebitenui.UI
	debug    *debugTools

	width, height int
}

func NewGame(sess *session.GameSession, debug bool) *Game {
	g := &Game{
		session:  sess,
		input:    NewInput(),
		renderer: render.NewRenderSystem(sess.Grid(), lightingFrom(sess.Specs().Game)),
		hud:      render.NewHUDRenderer(2),
	}
	g.overlay = NewOverlayUI(g)
	if debug {
		g.debug = newDebugTools()
	}
	return g
}

func lightingFrom(spec *prefabs.GameSpec) render.Lighting {
	light := render.Lighting{
		Sky:         common.SkyColor,
		Ambient:     common.AmbientIntensity,
		Directional: common.DirectionalIntensity,
	}
	if spec == nil {
		return light
	}
	light.Sky = prefabs.ColorOr(spec.SkyColor, common.SkyColor)
	if spec.AmbientIntensity > 0 {
		light.Ambient = spec.AmbientIntensity
	}
	if spec.DirectionalLight > 0 {
		light.Directional = spec.DirectionalLight
	}
	return light
}

// requestLock asks the session to capture input on the next tick.
func (g *Game) requestLock() {
	if in := g.session.Input(); in != nil {
		in.LockRequested = true
	}
}

func (g *Game) Update() error {
	g.frames++

	locked := g.session.Controls().IsLocked()
	if !locked {
		g.overlay.Update()
	}

	g.input.Update(g.session.Input(), locked)
	g.session.Tick()
	syncCursor(g.session.Controls().IsLocked())

	if g.debug != nil {
		g.debug.update(g)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.session.World()
	g.renderer.Draw(w, screen)
	g.hud.Draw(w, screen)

	if !g.session.Controls().IsLocked() {
		g.overlay.Draw(screen)
	}

	if g.debug != nil {
		snap := g.session.Snapshot()
		render.DrawDebug(screen,
			fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()),
			fmt.Sprintf("cell (%d,%d) yaw %.2f", snap.PlayerCell.X, snap.PlayerCell.Z, snap.Yaw),
			fmt.Sprintf("coins %d/%d", snap.Collected, snap.Total),
		)
	}
}

// Layout follows the window size so the camera aspect tracks resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.session.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Close() {
	if g.debug != nil {
		g.debug.close()
	}
}
