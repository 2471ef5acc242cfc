package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

const (
	hudPaddingX = 12
	hudPaddingY = 12
	// ebitenutil's debug font is 6x16 per glyph.
	debugGlyphW = 6
	debugGlyphH = 16
)

// HUDRenderer draws the coin counter and the status message.
type HUDRenderer struct {
	scale  float64
	buffer *ebiten.Image
}

func NewHUDRenderer(scale float64) *HUDRenderer {
	if scale <= 0 {
		scale = 2
	}
	return &HUDRenderer{scale: scale}
}

func (h *HUDRenderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}

	ecs.ForEach(w, component.HUDComponent.Kind(), func(_ ecs.Entity, hud *component.HUD) {
		h.drawText(screen, fmt.Sprintf("Coins: %s", hud.CoinsText), hudPaddingX, hudPaddingY)

		if hud.Message == "" {
			return
		}
		b := screen.Bounds()
		textW := float64(len(hud.Message)*debugGlyphW) * h.scale
		x := (float64(b.Dx()) - textW) / 2
		y := float64(b.Dy())/2 - float64(debugGlyphH)*h.scale*2
		h.drawText(screen, hud.Message, x, y)
	})
}

// drawText renders debug-font text into a scratch image and scales it up.
func (h *HUDRenderer) drawText(screen *ebiten.Image, text string, x, y float64) {
	w := len(text)*debugGlyphW + 2
	if h.buffer == nil || h.buffer.Bounds().Dx() < w {
		h.buffer = ebiten.NewImage(w, debugGlyphH)
	}
	h.buffer.Clear()
	ebitenutil.DebugPrintAt(h.buffer, text, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(h.scale, h.scale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(h.buffer, op)
}

// DrawDebug prints frame timing and the player's cell in the top-right corner.
func DrawDebug(screen *ebiten.Image, lines ...string) {
	b := screen.Bounds()
	for i, line := range lines {
		x := b.Dx() - len(line)*debugGlyphW - hudPaddingX
		ebitenutil.DebugPrintAt(screen, line, x, hudPaddingY+i*debugGlyphH)
	}
}
