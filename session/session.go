// Package session owns one play-through: the maze, the ECS world built from
// it, the game state and the ordered systems that advance it each tick.
package session

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/mazerunner/common"
	"github.com/milk9111/mazerunner/control"
	"github.com/milk9111/mazerunner/ecs"
	"github.com/milk9111/mazerunner/ecs/component"
	"github.com/milk9111/mazerunner/ecs/entity"
	"github.com/milk9111/mazerunner/ecs/system"
	"github.com/milk9111/mazerunner/levels"
	"github.com/milk9111/mazerunner/maze"
	"github.com/milk9111/mazerunner/prefabs"
	"github.com/milk9111/mazerunner/scene"
)

type Options struct {
	// Level is an embedded level name. Ignored when Grid is set.
	Level string
	// Grid overrides the level layout.
	Grid *maze.Grid
	// Spawn overrides the level's player spawn cell.
	Spawn *maze.Point
	// Coins overrides the level and game.yaml coin counts when positive.
	Coins int
	// Seed drives coin placement. Zero picks a time-based seed.
	Seed int64
	// Specs are the prefab specs to build from. Nil loads them from prefabs.
	Specs *prefabs.Specs
	Debug bool
}

type GameSession struct {
	ID    uuid.UUID
	Level string
	Seed  int64

	grid      *maze.Grid
	world     *ecs.World
	scene     *scene.WorldScene
	controls  *control.PointerLockControls
	scheduler *ecs.Scheduler
	hud       *system.HUDSystem
	specs     prefabs.Specs

	walls  []ecs.Entity
	floor  ecs.Entity
	coins  []ecs.Entity
	player ecs.Entity
	camera ecs.Entity
	state  ecs.Entity

	debug bool
}

func New(opts Options) (*GameSession, error) {
	specs := opts.Specs
	if specs == nil {
		loaded, err := prefabs.LoadAll()
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		specs = loaded
	}
	cfg := entity.Defaults(specs)

	levelName := opts.Level
	grid := opts.Grid
	var lvl *levels.Level
	if grid == nil {
		if strings.TrimSpace(levelName) == "" {
			levelName = levels.DefaultLevel
		}
		var err error
		lvl, err = levels.LoadLevelFromFS(levelName)
		if err != nil {
			return nil, fmt.Errorf("session: level %s: %w", levelName, err)
		}
		grid, err = lvl.Grid()
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	} else if levelName == "" {
		levelName = "custom"
	}

	var spawn maze.Point
	switch {
	case opts.Spawn != nil:
		spawn = *opts.Spawn
		if grid.IsWall(spawn.X, spawn.Z) {
			return nil, fmt.Errorf("session: spawn (%d,%d) is a wall", spawn.X, spawn.Z)
		}
	default:
		var err error
		if spawn, err = lvl.SpawnCell(grid); err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	}

	coinCount := cfg.Game.CoinCount
	if lvl != nil && lvl.CoinCount > 0 {
		coinCount = lvl.CoinCount
	}
	if opts.Coins > 0 {
		coinCount = opts.Coins
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := ecs.NewWorld()
	s := &GameSession{
		ID:    uuid.New(),
		Level: levelName,
		Seed:  seed,
		grid:  grid,
		world: w,
		scene: scene.NewWorldScene(w),
		specs: cfg,
		debug: opts.Debug,
	}

	built, err := entity.BuildWorld(s.scene, grid, &cfg)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.walls = built.Walls
	s.floor = built.Floor

	s.coins, err = entity.SpawnCoins(s.scene, grid, coinCount, rand.New(rand.NewSource(seed)), &cfg)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	if s.player, err = entity.NewPlayerAt(w, grid, spawn, &cfg); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if s.camera, err = entity.NewCamera(w, &cfg); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if s.state, err = entity.NewGameState(w, len(s.coins)); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.controls = control.New(w)
	s.hud = system.NewHUDSystem(cfg.Game.StatusScript, cfg.Game.WinMessageOverride)
	s.scheduler = ecs.NewScheduler(
		system.NewPointerLockSystem(),
		system.NewPlayerControllerSystem(s.controls),
		system.NewCollisionSystem(s.controls, s.scene, s.walls, cfg.Game.WallNudge),
		system.NewCoinSpinSystem(),
		system.NewCameraSystem(s.controls),
		s.hud,
	)

	// Settle camera and HUD before the first frame is drawn.
	s.scheduler.Update(w)
	w.Events().Drain()

	log.Printf("session %s: level %s %dx%d, %d coins, seed %d", s.ID, levelName, grid.Cols(), grid.Rows(), len(s.coins), seed)
	return s, nil
}

// Tick advances the session by one frame and returns the events it raised.
func (s *GameSession) Tick() []ecs.Event {
	events := s.scheduler.Step(s.world)
	for _, evt := range events {
		switch evt.Type {
		case ecs.EventCoinCollected:
			if data, ok := evt.Data.(ecs.CoinCollectedEvent); ok {
				log.Printf("session %s: coin %v collected %d/%d", s.ID, data.Coin, data.Collected, data.Total)
			}
		case ecs.EventGameWon:
			log.Printf("session %s: all coins collected after %d ticks", s.ID, s.scheduler.Frames())
		case ecs.EventWallContact:
			if s.debug {
				if data, ok := evt.Data.(ecs.WallContactEvent); ok {
					log.Printf("session %s: wall contact %v", s.ID, data.Wall)
				}
			}
		}
	}
	return events
}

// Resize updates the camera projection for a new output size. Non-positive
// sizes are ignored.
func (s *GameSession) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cam, ok := ecs.Get(s.world, s.camera, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam.Aspect = float64(width) / float64(height)
	cam.ViewportW = width
	cam.ViewportH = height
}

// ApplyPlayerSpec swaps in new player tuning.
func (s *GameSession) ApplyPlayerSpec(spec *prefabs.PlayerSpec) error {
	if err := entity.ApplyPlayerSpec(s.world, s.player, spec); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if spec != nil {
		*s.specs.Player = *spec
	}
	return nil
}

// ReloadScripts recompiles the status script and redraws the HUD texts.
func (s *GameSession) ReloadScripts() {
	s.hud.Reload()
	if hud, ok := ecs.Get(s.world, s.state, component.HUDComponent.Kind()); ok {
		hud.RenderedCollected = -1
	}
}

func (s *GameSession) World() *ecs.World                      { return s.world }
func (s *GameSession) Grid() *maze.Grid                       { return s.grid }
func (s *GameSession) Controls() *control.PointerLockControls { return s.controls }
func (s *GameSession) Player() ecs.Entity                     { return s.player }
func (s *GameSession) Camera() ecs.Entity                     { return s.camera }
func (s *GameSession) Walls() []ecs.Entity                    { return append([]ecs.Entity(nil), s.walls...) }
func (s *GameSession) Specs() prefabs.Specs                   { return s.specs }
func (s *GameSession) Ticks() uint64                          { return s.scheduler.Frames() }

// Input returns the player's input component for the host to fill each frame.
func (s *GameSession) Input() *component.Input {
	input, _ := ecs.Get(s.world, s.player, component.InputComponent.Kind())
	return input
}

func (s *GameSession) Counter() component.CoinCounter {
	if c, ok := ecs.Get(s.world, s.state, component.CoinCounterComponent.Kind()); ok {
		return *c
	}
	return component.CoinCounter{}
}

func (s *GameSession) HUD() component.HUD {
	if h, ok := ecs.Get(s.world, s.state, component.HUDComponent.Kind()); ok {
		return *h
	}
	return component.HUD{}
}

// Coins returns the coins still in play, in spawn order.
func (s *GameSession) Coins() []ecs.Entity {
	out := make([]ecs.Entity, 0, len(s.coins))
	for _, e := range s.coins {
		if ecs.IsAlive(s.world, e) {
			out = append(out, e)
		}
	}
	return out
}

// CoinPosition returns where a live coin sits.
func (s *GameSession) CoinPosition(e ecs.Entity) (common.Vec3, bool) {
	if !ecs.Has(s.world, e, component.CoinComponent.Kind()) {
		return common.Vec3{}, false
	}
	t, ok := ecs.Get(s.world, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	return common.Vec3{X: t.X, Y: t.Y, Z: t.Z}, true
}
