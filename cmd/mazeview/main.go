// Command mazeview previews a level and a seeded coin spawn in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/ecs/entity"
	"github.com/milk9111/mazerunner/levels"
	"github.com/milk9111/mazerunner/maze"
	"github.com/milk9111/mazerunner/scene"
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x8B, 0x45, 0x13))
	floorStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x22, 0x8B, 0x22))
	coinStyle   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xFF, 0xD7, 0x00)).Bold(true)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	errStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type preview struct {
	names []string
	index int
	coins int
	seed  int64

	level *levels.Level
	grid  *maze.Grid
	spawn maze.Point
	cells map[maze.Point]int
	err   error
}

func (p *preview) load() {
	p.err = nil
	p.cells = map[maze.Point]int{}

	lvl, err := levels.LoadLevelFromFS(p.names[p.index])
	if err != nil {
		p.err = err
		return
	}
	g, err := lvl.Grid()
	if err != nil {
		p.err = err
		return
	}
	p.level, p.grid = lvl, g
	if p.spawn, err = lvl.SpawnCell(g); err != nil {
		p.err = err
		return
	}

	count := p.coins
	if count <= 0 {
		count = lvl.CoinCount
	}
	if count <= 0 {
		count = entity.Defaults(nil).Game.CoinCount
	}

	w := ecs.NewWorld()
	if _, err := entity.SpawnCoins(scene.NewWorldScene(w), g, count, rand.New(rand.NewSource(p.seed)), nil); err != nil {
		p.err = err
		return
	}
	ecs.ForEach(w, component.CoinComponent.Kind(), func(_ ecs.Entity, c *component.Coin) {
		p.cells[maze.Point{X: c.GridX, Z: c.GridZ}]++
	})
}

func (p *preview) draw(screen tcell.Screen) {
	screen.Clear()
	defer screen.Show()

	if p.err != nil {
		drawText(screen, 0, 0, errStyle, p.err.Error())
		drawText(screen, 0, 2, textStyle, "n next level  r reseed  q quit")
		return
	}

	for z := 0; z < p.grid.Rows(); z++ {
		for x := 0; x < p.grid.Cols(); x++ {
			pt := maze.Point{X: x, Z: z}
			ch, style := '·', floorStyle
			switch {
			case p.grid.IsWall(x, z):
				ch, style = '█', wallStyle
			case pt == p.spawn:
				ch, style = '@', playerStyle
			case p.cells[pt] > 1:
				ch, style = rune('0'+min(p.cells[pt], 9)), coinStyle
			case p.cells[pt] == 1:
				ch, style = 'o', coinStyle
			}
			// Two columns per cell keeps the maze roughly square.
			screen.SetContent(x*2, z, ch, nil, style)
			screen.SetContent(x*2+1, z, ch, nil, style)
		}
	}

	y := p.grid.Rows() + 1
	drawText(screen, 0, y, textStyle, fmt.Sprintf("%s  %dx%d  seed %d  coins %d", p.names[p.index], p.grid.Cols(), p.grid.Rows(), p.seed, sumCells(p.cells)))
	drawText(screen, 0, y+1, textStyle, "n next level  r reseed  q quit")
}

func sumCells(cells map[maze.Point]int) int {
	n := 0
	for _, c := range cells {
		n += c
	}
	return n
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func main() {
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (basename, .json optional)")
	coins := flag.Int("coins", 0, "coin count (0 uses the level's)")
	seed := flag.Int64("seed", 0, "coin placement seed (0 picks one from the clock)")
	flag.Parse()

	p := &preview{names: levels.Names(), coins: *coins, seed: *seed}
	if len(p.names) == 0 {
		log.Fatal("mazeview: no embedded levels")
	}
	if p.seed == 0 {
		p.seed = time.Now().UnixNano()
	}
	want := *levelName
	if filepath.Ext(want) == "" {
		want += ".json"
	}
	for i, name := range p.names {
		if name == want {
			p.index = i
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("mazeview: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("mazeview: %v", err)
	}
	defer screen.Fini()

	p.load()
	p.draw(screen)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			p.draw(screen)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				return
			}
			if ev.Key() != tcell.KeyRune {
				continue
			}
			switch ev.Rune() {
			case 'q':
				return
			case 'r':
				p.seed = rand.Int63()
				p.load()
			case 'n':
				p.index = (p.index + 1) % len(p.names)
				p.load()
			}
			p.draw(screen)
		}
	}
}
