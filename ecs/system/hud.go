package system

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/prefabs"
)

// HUDSystem rebuilds the coin and status texts whenever the counter changes.
// The texts come from a tengo script that reads collected, total, won and
// win_message and sets coins and message. Without a usable script the coin
// count and the win message are written directly.
type HUDSystem struct {
	scriptPath string
	winMessage string

	compiled   *tengo.Compiled
	loadFailed bool
}

func NewHUDSystem(scriptPath, winMessage string) *HUDSystem {
	if strings.TrimSpace(winMessage) == "" {
		winMessage = common.WinMessage
	}
	return &HUDSystem{scriptPath: scriptPath, winMessage: winMessage}
}

// Reload drops the compiled script so the next change recompiles it.
func (s *HUDSystem) Reload() {
	s.compiled = nil
	s.loadFailed = false
}

func (s *HUDSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.CoinCounterComponent.Kind(), component.HUDComponent.Kind(), func(_ ecs.Entity, counter *component.CoinCounter, hud *component.HUD) {
		if hud.RenderedCollected == counter.Collected && hud.RenderedWon == counter.Won {
			return
		}

		coins, message, err := s.render(counter)
		if err != nil {
			log.Printf("hud: status script: %v", err)
			coins, message = s.fallback(counter)
		}

		hud.CoinsText = coins
		hud.Message = message
		hud.RenderedCollected = counter.Collected
		hud.RenderedWon = counter.Won
	})
}

func (s *HUDSystem) fallback(counter *component.CoinCounter) (string, string) {
	message := ""
	if counter.Won {
		message = s.winMessage
	}
	return strconv.Itoa(counter.Collected), message
}

func (s *HUDSystem) render(counter *component.CoinCounter) (string, string, error) {
	compiled, err := s.script()
	if err != nil {
		return "", "", err
	}

	if err := compiled.Set("collected", counter.Collected); err != nil {
		return "", "", err
	}
	if err := compiled.Set("total", counter.Total); err != nil {
		return "", "", err
	}
	if err := compiled.Set("won", counter.Won); err != nil {
		return "", "", err
	}
	if err := compiled.Set("win_message", s.winMessage); err != nil {
		return "", "", err
	}
	if err := compiled.Run(); err != nil {
		return "", "", err
	}

	if !compiled.IsDefined("coins") || !compiled.IsDefined("message") {
		return "", "", fmt.Errorf("script %s must set coins and message", s.scriptPath)
	}
	return compiled.Get("coins").String(), compiled.Get("message").String(), nil
}

func (s *HUDSystem) script() (*tengo.Compiled, error) {
	if s.compiled != nil {
		return s.compiled, nil
	}
	if s.loadFailed {
		return nil, fmt.Errorf("script %s unavailable", s.scriptPath)
	}
	if strings.TrimSpace(s.scriptPath) == "" {
		s.loadFailed = true
		return nil, fmt.Errorf("no status script configured")
	}

	src, err := prefabs.LoadScript(s.scriptPath)
	if err != nil {
		s.loadFailed = true
		return nil, fmt.Errorf("load %s: %w", s.scriptPath, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("collected", 0)
	_ = script.Add("total", 0)
	_ = script.Add("won", false)
	_ = script.Add("win_message", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		s.loadFailed = true
		return nil, fmt.Errorf("compile %s: %w", s.scriptPath, err)
	}
	s.compiled = compiled
	return compiled, nil
}
