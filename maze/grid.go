// Package maze holds the static occupancy grid that defines the world layout,
// along with grid/world coordinate mapping and grid ray casting.
package maze

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Cell uint8

const (
	Open Cell = iota
	Wall
)

func (c Cell) String() string {
	if c == Wall {
		return "wall"
	}
	return "open"
}

var (
	ErrEmptyGrid      = errors.New("maze: grid is empty")
	ErrNotRectangular = errors.New("maze: grid rows differ in length")
	ErrInvalidCell    = errors.New("maze: invalid cell value")
)

// Point addresses a grid cell. X is the column, Z the row.
type Point struct {
	X, Z int
}

// DefaultLayout is the built-in 10x10 maze. 1 is a wall, 0 is open floor.
var DefaultLayout = [][]int{
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	{1, 0, 0, 0, 1, 0, 0, 0, 0, 1},
	{1, 0, 1, 0, 1, 0, 1, 1, 0, 1},
	{1, 0, 1, 0, 0, 0, 0, 1, 0, 1},
	{1, 0, 1, 1, 1, 1, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 1, 0, 1, 0, 1},
	{1, 1, 1, 1, 0, 1, 0, 1, 0, 1},
	{1, 0, 0, 0, 0, 0, 0, 1, 0, 1},
	{1, 0, 1, 1, 1, 1, 1, 1, 0, 1},
	{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}

// Grid is an immutable rectangular occupancy grid.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// New copies layout into a Grid. Layout is indexed [row][col].
func New(layout [][]Cell) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(layout), len(layout[0])
	cells := make([]Cell, 0, rows*cols)
	for z, row := range layout {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, z, len(row), cols)
		}
		for x, c := range row {
			if c != Open && c != Wall {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, c, x, z)
			}
			cells = append(cells, c)
		}
	}
	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// FromInts converts a 0/1 layout into a Grid.
func FromInts(layout [][]int) (*Grid, error) {
	converted := make([][]Cell, len(layout))
	for z, row := range layout {
		converted[z] = make([]Cell, len(row))
		for x, v := range row {
			switch v {
			case 0:
				converted[z][x] = Open
			case 1:
				converted[z][x] = Wall
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, x, z)
			}
		}
	}
	return New(converted)
}

// Default returns the built-in layout.
func Default() *Grid {
	g, err := FromInts(DefaultLayout)
	if err != nil {
		panic("maze: default layout: " + err.Error())
	}
	return g
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.cols && z >= 0 && z < g.rows
}

// At returns the cell at column x, row z. Cells outside the grid read as Wall.
func (g *Grid) At(x, z int) Cell {
	if !g.InBounds(x, z) {
		return Wall
	}
	return g.cells[z*g.cols+x]
}

func (g *Grid) IsWall(x, z int) bool {
	return g.At(x, z) == Wall
}

// WorldCenter maps a cell to the world-space center of its footprint.
func (g *Grid) WorldCenter(x, z int) (float64, float64) {
	return float64(x) - float64(g.cols)/2, float64(z) - float64(g.rows)/2
}

// CellAt maps a world-space position to the cell whose footprint contains it.
func (g *Grid) CellAt(wx, wz float64) Point {
	return Point{
		X: int(math.Floor(wx + float64(g.cols)/2 + 0.5)),
		Z: int(math.Floor(wz + float64(g.rows)/2 + 0.5)),
	}
}

// WallCells lists every wall cell in row-major order.
func (g *Grid) WallCells() []Point {
	var out []Point
	for z := 0; z < g.rows; z++ {
		for x := 0; x < g.cols; x++ {
			if g.IsWall(x, z) {
				out = append(out, Point{X: x, Z: z})
			}
		}
	}
	return out
}

// OpenInterior lists open cells that are not on the border.
func (g *Grid) OpenInterior() []Point {
	var out []Point
	for z := 1; z <= g.rows-2; z++ {
		for x := 1; x <= g.cols-2; x++ {
			if !g.IsWall(x, z) {
				out = append(out, Point{X: x, Z: z})
			}
		}
	}
	return out
}

func (g *Grid) String() string {
	var b strings.Builder
	for z := 0; z < g.rows; z++ {
		for x := 0; x < g.cols; x++ {
			if g.IsWall(x, z) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
