package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/bouncebox/config"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/entity"
	"github.com/milk9111/bouncebox/ecs/system"
)

// Options are the command line settings that outlive a config reload.
type Options struct {
	Debug bool
	// WatchPath is the config file to reload on change; empty disables it.
	WatchPath string
	// Override re-applies flag values on top of every loaded config.
	Override func(cfg *config.Config)
}

type Game struct {
	cfg    config.Config
	opts   Options
	logger *log.Logger

	world     *ecs.World
	square    ecs.Entity
	scheduler *ecs.Scheduler
	timing    *system.FrameTimingSystem
	render    *system.RenderSystem
	hud       *system.HUDSystem
	overlay   *system.DebugOverlaySystem

	watcher *config.Watcher
	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
}

// applyWindow pushes window settings to ebiten. Swapped out in tests.
var applyWindow = func(w config.WindowConfig) {
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetTPS(w.MaxFPS)
}

func NewGame(cfg config.Config, logger *log.Logger, opts Options) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	hud, err := system.NewHUDSystem()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		opts:    opts,
		logger:  logger,
		timing:  system.NewFrameTimingSystem(nil),
		render:  system.NewRenderSystem(),
		hud:     hud,
		overlay: system.NewDebugOverlaySystem(),
	}
	g.scheduler = ecs.NewScheduler(
		g.timing,
		system.NewInputSystem(nil),
		system.NewThrustSystem(),
		system.NewMovementSystem(),
		system.NewBoundaryCollisionSystem(),
		system.NewBounceLogSystem(logger),
	)
	if err := g.reset(); err != nil {
		return nil, err
	}

	if opts.WatchPath != "" {
		watcher, err := config.NewWatcher(opts.WatchPath)
		if err != nil {
			return nil, err
		}
		g.watcher = watcher
		logger.Info("watching config", "path", watcher.Path())
	}
	return g, nil
}

// reset rebuilds the world from the current config.
func (g *Game) reset() error {
	world, square, err := entity.BuildWorld(g.cfg)
	if err != nil {
		return fmt.Errorf("game: build world: %w", err)
	}
	g.world = world
	g.square = square
	g.timing.Reset()
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollConfig()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.paused)
	}
	if g.paused {
		g.pauseMenu().Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	g.hud.Draw(g.world, screen)
	if g.opts.Debug {
		g.overlay.Draw(g.world, screen)
	}
	if g.paused {
		g.pauseMenu().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close stops the config watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) setPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if !paused {
		// The wall clock kept running while the menu was up.
		g.timing.Reset()
	}
	g.logger.Debug("pause toggled", "paused", paused)
}

func (g *Game) restart() {
	if err := g.reset(); err != nil {
		g.logger.Error("restart failed", "err", err)
		return
	}
	g.setPaused(false)
	g.logger.Info("restarted")
}

func (g *Game) pauseMenu() *ebitenui.UI {
	if g.pauseUI == nil {
		g.pauseUI = NewPauseUI(g)
	}
	return g.pauseUI
}

// pollConfig drains pending watcher notifications without blocking the tick.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("config watch error", "err", err)
		default:
			return
		}
	}
}

// reload applies the file at path to the running world. A bad file is logged
// and the current settings stay in effect.
func (g *Game) reload(path string) {
	cfg, err := config.LoadFile(path)
	if err == nil {
		if g.opts.Override != nil {
			g.opts.Override(&cfg)
		}
		// ApplyConfig validates the merged result.
		err = entity.ApplyConfig(g.world, cfg)
	}
	if err != nil {
		g.logger.Warn("config reload rejected", "path", path, "err", err)
		return
	}

	if cfg.Window != g.cfg.Window {
		applyWindow(cfg.Window)
		g.pauseUI = nil
	}
	g.cfg = cfg
	g.logger.Info("config reloaded", "path", path)
}
