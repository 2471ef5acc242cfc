package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/maze"
	"github.com/milk9111/mazerunner/prefabs"
	"github.com/milk9111/mazerunner/scene"
)

var ErrNotEnoughOpenCells = errors.New("coins: not enough open interior cells")

// Rand is the slice of math/rand the spawner needs.
type Rand interface {
	Intn(n int) int
}

// SpawnCoins scatters count coins over random open interior cells using
// rejection sampling. Coins may share a cell. The grid must have at least
// count open interior cells, otherwise nothing is spawned and
// ErrNotEnoughOpenCells is returned.
func SpawnCoins(s scene.Scene, g *maze.Grid, count int, rng Rand, specs *prefabs.Specs) ([]ecs.Entity, error) {
	if count <= 0 {
		return nil, nil
	}
	if g == nil || rng == nil {
		return nil, fmt.Errorf("coins: nil grid or rng")
	}
	if open := len(g.OpenInterior()); open < count {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughOpenCells, open, count)
	}

	cfg := withDefaults(specs)
	coinColor := prefabs.ColorOr(cfg.Coin.Color, common.CoinColor)

	coins := make([]ecs.Entity, 0, count)
	for i := 0; i < count; i++ {
		var x, z int
		for {
			x = rng.Intn(g.Cols()-2) + 1
			z = rng.Intn(g.Rows()-2) + 1
			if !g.IsWall(x, z) {
				break
			}
		}

		wx, wz := g.WorldCenter(x, z)
		e, err := s.Add(scene.Coin{
			GridX:         x,
			GridZ:         z,
			Center:        common.Vec3{X: wx, Y: cfg.Coin.Height, Z: wz},
			Radius:        cfg.Coin.Radius,
			Tube:          cfg.Coin.Tube,
			CaptureRadius: cfg.Coin.CaptureRadius,
			SpinSpeed:     cfg.Coin.SpinSpeed,
			Order:         i,
			Color:         coinColor,
		})
		if err != nil {
			return nil, fmt.Errorf("coins: add coin %d: %w", i, err)
		}
		coins = append(coins, e)
	}
	return coins, nil
}
