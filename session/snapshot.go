package session

import (
	"fmt"
	"strings"

	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/maze"
)

// Snapshot is a read-only view of the session for overlays and debugging.
type Snapshot struct {
	ID         string
	Level      string
	Ticks      uint64
	Locked     bool
	Player     common.Vec3
	PlayerCell maze.Point
	Yaw        float64
	Pitch      float64
	Collected  int
	Total      int
	Remaining  int
	Won        bool
	CoinsText  string
	Message    string
}

func (s *GameSession) Snapshot() Snapshot {
	pos := s.controls.Position()
	counter := s.Counter()
	hud := s.HUD()
	return Snapshot{
		ID:         s.ID.String(),
		Level:      s.Level,
		Ticks:      s.Ticks(),
		Locked:     s.controls.IsLocked(),
		Player:     pos,
		PlayerCell: s.grid.CellAt(pos.X, pos.Z),
		Yaw:        s.controls.Yaw(),
		Pitch:      s.controls.Pitch(),
		Collected:  counter.Collected,
		Total:      counter.Total,
		Remaining:  len(s.Coins()),
		Won:        counter.Won,
		CoinsText:  hud.CoinsText,
		Message:    hud.Message,
	}
}

// DumpASCII renders the maze with coins as 'o' and the player as '@',
// followed by a status line.
func (s *GameSession) DumpASCII() string {
	rows, cols := s.grid.Rows(), s.grid.Cols()
	canvas := make([][]byte, rows)
	for z := 0; z < rows; z++ {
		canvas[z] = make([]byte, cols)
		for x := 0; x < cols; x++ {
			if s.grid.IsWall(x, z) {
				canvas[z][x] = '#'
			} else {
				canvas[z][x] = '.'
			}
		}
	}

	ecs.ForEach(s.world, component.CoinComponent.Kind(), func(_ ecs.Entity, c *component.Coin) {
		if s.grid.InBounds(c.GridX, c.GridZ) {
			canvas[c.GridZ][c.GridX] = 'o'
		}
	})

	snap := s.Snapshot()
	if s.grid.InBounds(snap.PlayerCell.X, snap.PlayerCell.Z) {
		canvas[snap.PlayerCell.Z][snap.PlayerCell.X] = '@'
	}

	var b strings.Builder
	for _, row := range canvas {
		b.Write(row)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "session %s level %s coins %d/%d player (%.2f, %.2f, %.2f) yaw %.2f",
		snap.ID, snap.Level, snap.Collected, snap.Total, snap.Player.X, snap.Player.Y, snap.Player.Z, snap.Yaw)
	if snap.Won {
		b.WriteString(" won")
	}
	b.WriteByte('\n')
	return b.String()
}
