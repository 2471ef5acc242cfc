package main

import (
	"log"
	"os"

	"github.com/milk9111/mazerunner/prefabs"
	"golang.design/x/clipboard"
)

// debugTools hot-reloads prefabs from disk and copies session dumps to the
// clipboard. Both are optional; a missing prefabs dir or clipboard only logs.
type debugTools struct {
	watcher   *prefabs.Watcher
	clipboard bool
}

func newDebugTools() *debugTools {
	d := &debugTools{}

	var dirs []string
	for _, dir := range []string{prefabs.Dir, prefabs.Dir + "/scripts"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) > 0 {
		w, err := prefabs.NewWatcher(dirs...)
		if err != nil {
			log.Printf("debug: prefab watcher: %v", err)
		} else {
			d.watcher = w
			log.Printf("debug: watching %v for %d prefabs", dirs, len(prefabs.Names()))
		}
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("debug: clipboard unavailable: %v", err)
	} else {
		d.clipboard = true
	}
	return d
}

func (d *debugTools) update(g *Game) {
	for _, change := range d.watcher.Poll() {
		d.reload(g, change)
	}
	if d.watcher != nil {
		select {
		case err, ok := <-d.watcher.Errors:
			if ok && err != nil {
				log.Printf("debug: prefab watcher: %v", err)
			}
		default:
		}
	}

	if in := g.session.Input(); in != nil && in.DumpRequested {
		in.DumpRequested = false
		d.dump(g)
	}
}

func (d *debugTools) reload(g *Game, change prefabs.Change) {
	switch {
	case change.Kind == prefabs.ChangeScript:
		g.session.ReloadScripts()
		log.Printf("debug: reloaded script %s", change.Name)
	case change.Name == "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("debug: reload %s: %v", change.Name, err)
			return
		}
		if err := g.session.ApplyPlayerSpec(spec); err != nil {
			log.Printf("debug: apply %s: %v", change.Name, err)
			return
		}
		log.Printf("debug: reloaded %s", change.Name)
	case change.Name == "game.yaml":
		spec, err := prefabs.LoadGameSpec()
		if err != nil {
			log.Printf("debug: reload %s: %v", change.Name, err)
			return
		}
		g.renderer.SetLighting(lightingFrom(spec))
		log.Printf("debug: reloaded lighting from %s", change.Name)
	}
}

func (d *debugTools) dump(g *Game) {
	text := g.session.DumpASCII()
	if !d.clipboard {
		log.Printf("debug: session dump\n%s", text)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	log.Printf("debug: session dump copied to clipboard")
}

func (d *debugTools) close() {
	if d.watcher != nil {
		_ = d.watcher.Close()
	}
}
