package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/config"
	"github.com/milk9111/mazerunner/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	debug := flag.Bool("debug", cfg.Debug, "enable debug mode (hot reload, F9 clipboard dump, diagnostics)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", cfg.Level, "level name in levels/ (basename, .json optional)")
	coins := flag.Int("coins", cfg.Coins, "number of coins to scatter (0 uses the level's count)")
	seed := flag.Int64("seed", cfg.Seed, "coin placement seed (0 picks one from the clock)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	sess, err := session.New(session.Options{
		Level: *levelName,
		Coins: *coins,
		Seed:  *seed,
		Debug: *debug,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("mazerunner")

	game := NewGame(sess, *debug)
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
