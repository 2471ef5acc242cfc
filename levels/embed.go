package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/mazerunner/maze"
)

//go:embed *.json
var LevelsFS embed.FS

const DefaultLevel = "maze.json"

var (
	ErrBadSpawn    = errors.New("levels: spawn is not an open cell")
	ErrNoOpenCells = errors.New("levels: no open interior cell")
)

type Level struct {
	Name      string  `json:"name"`
	Layout    [][]int `json:"layout"`
	CoinCount int     `json:"coin_count,omitempty"`
	Spawn     *Cell   `json:"spawn,omitempty"`
}

type Cell struct {
	X int `json:"x"`
	Z int `json:"z"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, normalizeName(name))
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}

// Names lists the embedded level files.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

// Grid validates the layout and returns it as a maze grid.
func (l *Level) Grid() (*maze.Grid, error) {
	if l == nil {
		return nil, fmt.Errorf("level is nil")
	}
	g, err := maze.FromInts(l.Layout)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", l.Name, err)
	}
	return g, nil
}

// SpawnCell returns the configured player spawn. Levels without one spawn
// on the first open interior cell. A spawn on a wall or off the grid is an
// error rather than a silent move.
func (l *Level) SpawnCell(g *maze.Grid) (maze.Point, error) {
	if l != nil && l.Spawn != nil {
		x, z := l.Spawn.X, l.Spawn.Z
		if !g.InBounds(x, z) || g.IsWall(x, z) {
			return maze.Point{}, fmt.Errorf("%w: level %q spawn (%d,%d)", ErrBadSpawn, l.Name, x, z)
		}
		return maze.Point{X: x, Z: z}, nil
	}
	open := g.OpenInterior()
	if len(open) == 0 {
		return maze.Point{}, ErrNoOpenCells
	}
	return open[0], nil
}

func normalizeName(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	if s == "" {
		return DefaultLevel
	}
	if filepath.Ext(s) == "" {
		s += ".json"
	}
	return s
}
