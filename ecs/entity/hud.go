package entity

import (
	"fmt"

	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
)

// NewGameState creates the entity holding the coin counter and the HUD texts.
func NewGameState(w *ecs.World, totalCoins int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CoinCounterComponent.Kind(), component.NewCoinCounter(totalCoins)); err != nil {
		return 0, fmt.Errorf("game state: add counter: %w", err)
	}
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), &component.HUD{CoinsText: "0", RenderedCollected: -1}); err != nil {
		return 0, fmt.Errorf("game state: add hud: %w", err)
	}
	return e, nil
}
