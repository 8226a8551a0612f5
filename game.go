package main

import (
	"fmt"
	"math"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/tilewalker/character"
	"github.com/milk9111/tilewalker/ecs"
	"github.com/milk9111/tilewalker/ecs/component"
	"github.com/milk9111/tilewalker/ecs/entity"
	"github.com/milk9111/tilewalker/ecs/render"
	"github.com/milk9111/tilewalker/ecs/system"
	"github.com/milk9111/tilewalker/input"
	"github.com/milk9111/tilewalker/levels"
	"github.com/milk9111/tilewalker/logging"
	"github.com/milk9111/tilewalker/prefabs"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

// watchDirs are the disk overrides picked up by hot reload.
var watchDirs = []string{"levels", "prefabs", "prefabs/scripts", "assets"}

type Options struct {
	Level     string
	Debug     bool
	Watch     bool
	FixedStep bool
	Autopilot string
}

type Game struct {
	opts     Options
	spec     *prefabs.GameSpec
	builder  *entity.Builder
	keyboard *input.Keyboard
	source   input.Source

	world     *ecs.World
	level     *levels.Level
	entities  entity.LevelEntities
	telemetry *system.TelemetrySystem
	clock     *system.TimeSystem

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher
	log     *zap.SugaredLogger
}

func NewGame(opts Options) (*Game, error) {
	if opts.Level == "" {
		opts.Level = "1"
	}
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}
	movement, err := spec.MovementConfig(opts.FixedStep)
	if err != nil {
		return nil, err
	}
	bindings, err := input.LoadBindings()
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:     opts,
		spec:     spec,
		builder:  entity.NewBuilder(spec, movement),
		keyboard: input.NewKeyboard(bindings),
		log:      logging.Named("game"),
	}
	g.source = g.keyboard
	g.log.Debugw("input bindings", "actions", bindings.Names())
	if opts.Autopilot != "" {
		pilot, err := input.LoadAutopilot(opts.Autopilot)
		if err != nil {
			return nil, err
		}
		g.source = pilot
	}

	if err := g.loadLevel(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(watchDirs...)
		if err != nil {
			g.log.Warnw("hot reload disabled", "error", err)
		} else {
			g.watcher = w
			g.log.Infow("watching for changes", "dirs", w.Watched())
		}
	}

	g.log.Infow("game ready",
		"level", g.level.Name,
		"tile_size", movement.TileSize,
		"transit_ticks", movement.TransitTicks,
		"tick_based", movement.TickBased(),
	)
	return g, nil
}

// loadLevel builds a fresh world for the configured level. On failure the
// current world, if any, is kept.
func (g *Game) loadLevel() error {
	lvl, err := levels.Load(g.opts.Level)
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	telemetry := system.NewTelemetrySystem()
	step := time.Second / time.Duration(g.spec.TicksPerSecond)
	var clock system.Clock = system.NewRealClock(2 * step)
	if g.opts.FixedStep {
		clock = system.FixedClock{Step: step}
	}
	timeSystem := system.NewTimeSystem(clock)
	world.AddSystem(timeSystem)
	world.AddSystem(system.NewInputSystem(g.source))
	world.AddSystem(system.NewCharacterSystem())
	world.AddSystem(system.NewCameraSystem())
	world.AddSystem(telemetry)
	world.AddSystem(system.NewRenderSystem())

	ents, err := g.builder.LoadLevelToWorld(world, lvl)
	if err != nil {
		return err
	}

	g.world = world
	g.level = lvl
	g.entities = ents
	g.telemetry = telemetry
	g.clock = timeSystem
	return nil
}

// Restart rebuilds the level from disk and resumes play.
func (g *Game) Restart(reason string) {
	render.Forget()
	if g.opts.Autopilot != "" {
		// A broken edit keeps the previous script running.
		if pilot, err := input.LoadAutopilot(g.opts.Autopilot); err != nil {
			g.log.Errorw("reload autopilot", "script", g.opts.Autopilot, "error", err)
		} else {
			g.source = pilot
		}
	}
	if err := g.loadLevel(); err != nil {
		g.log.Errorw("reload level", "level", g.opts.Level, "reason", reason, "error", err)
		return
	}
	g.paused = false
	g.log.Infow("level reloaded", "level", g.level.Name, "reason", reason)
}

// SetPaused stops or resumes the world. Wall time spent paused is not fed
// to the simulation.
func (g *Game) SetPaused(paused bool) {
	if g.paused && !paused && g.clock != nil {
		g.clock.Reset()
	}
	g.paused = paused
}

func (g *Game) Quit() {
	g.quit = true
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if g.watcher != nil {
		if changed := g.watcher.Drain(); len(changed) > 0 {
			g.Restart(fmt.Sprintf("file changed: %s", changed[0]))
		}
	}

	if g.keyboard.JustPressed(input.ActionPause) {
		g.SetPaused(!g.paused)
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	// The input system only sees restart from the active source.
	if g.source != input.Source(g.keyboard) && g.keyboard.JustPressed(input.ActionRestart) {
		system.RequestReload(g.world, "restart")
	}
	g.world.Update()
	if reason, ok := system.TakeReloadRequest(g.world); ok {
		g.Restart(reason)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)
	g.world.Draw(screen)

	if g.opts.Debug {
		ebitenutil.DebugPrint(screen, g.hudText(ebiten.ActualTPS()))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// hudText describes the player for the debug overlay.
func (g *Game) hudText(tps float64) string {
	out := fmt.Sprintf("TPS: %.1f  level: %s", tps, g.level.Name)
	tr, ok := ecs.Get(g.world, g.entities.Player, component.TransformComponent.Kind())
	if !ok {
		return out
	}
	mv, ok := ecs.Get(g.world, g.entities.Player, component.MovementComponent.Kind())
	if !ok || mv.State == nil {
		return out
	}
	tileX, tileY := tilePosition(tr.X, tr.Y, g.spec.TileSize)
	return out + fmt.Sprintf("\ntile: %d,%d  facing: %s  moving: %t  frame: %d\ntransits: %d",
		tileX, tileY, mv.State.Orientation, mv.State.Moving, mv.State.NextFrame, g.telemetry.Finished)
}

func tilePosition(x, y, tileSize float64) (int, int) {
	if tileSize <= 0 {
		tileSize = character.DefaultTileSize
	}
	return int(math.Round(x / tileSize)), int(math.Round(y / tileSize))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.spec.ScreenWidth, g.spec.ScreenHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warnw("close watcher", "error", err)
		}
	}
}
