package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bouncebox/config"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	prev := applyWindow
	applyWindow = func(config.WindowConfig) {}
	t.Cleanup(func() { applyWindow = prev })

	g, err := NewGame(config.Default(), log.New(io.Discard), opts)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLayoutUsesConfiguredSize(t *testing.T) {
	g := newTestGame(t, Options{})
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 600 {
		t.Fatalf("expected 800x600, got %dx%d", w, h)
	}
}

func TestReload(t *testing.T) {
	t.Run("applies_file_and_overrides", func(t *testing.T) {
		g := newTestGame(t, Options{Override: func(cfg *config.Config) { cfg.Window.MaxFPS = 30 }})
		path := filepath.Join(t.TempDir(), "config.yaml")
		writeConfig(t, path, "window:\n  width: 640\nsquare:\n  push: 250\n")

		g.reload(path)

		if g.cfg.Window.Width != 640 || g.cfg.Window.MaxFPS != 30 {
			t.Fatalf("unexpected window config: %+v", g.cfg.Window)
		}
		thrust, _ := ecs.Get(g.world, g.square, component.ThrustComponent.Kind())
		if thrust.Push != 250 {
			t.Fatalf("expected push 250, got %g", thrust.Push)
		}
		if w, _ := g.Layout(0, 0); w != 640 {
			t.Fatalf("layout not updated, width %d", w)
		}
	})

	t.Run("bad_file_keeps_current_settings", func(t *testing.T) {
		g := newTestGame(t, Options{})
		path := filepath.Join(t.TempDir(), "config.yaml")
		writeConfig(t, path, "square:\n  friction: 9\n")

		g.reload(path)

		if g.cfg != config.Default() {
			t.Fatalf("config changed by rejected reload: %+v", g.cfg)
		}
	})

	t.Run("override_can_make_file_valid", func(t *testing.T) {
		g := newTestGame(t, Options{Override: func(cfg *config.Config) {
			cfg.Window.Width, cfg.Window.Height = 1000, 1000
		}})
		path := filepath.Join(t.TempDir(), "config.yaml")
		writeConfig(t, path, "square:\n  size: 700\n")

		g.reload(path)

		box, _ := ecs.Get(g.world, g.square, component.BoxComponent.Kind())
		if box.Width != 700 || g.cfg.Window.Width != 1000 {
			t.Fatalf("expected 700px square in a 1000px window, got box %+v window %+v", box, g.cfg.Window)
		}
	})

	t.Run("override_can_invalidate", func(t *testing.T) {
		g := newTestGame(t, Options{Override: func(cfg *config.Config) { cfg.Window.Width = -1 }})
		path := filepath.Join(t.TempDir(), "config.yaml")
		writeConfig(t, path, "square:\n  push: 5\n")

		g.reload(path)

		thrust, _ := ecs.Get(g.world, g.square, component.ThrustComponent.Kind())
		if thrust.Push != 1000 {
			t.Fatalf("expected push unchanged, got %g", thrust.Push)
		}
	})
}

func TestWatcherReloadReachesGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeConfig(t, path, "square:\n  push: 1000\n")
	g := newTestGame(t, Options{WatchPath: path})

	writeConfig(t, path, "square:\n  push: 42\n")

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		g.pollConfig()
		if g.cfg.Square.Push == 42 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("reload not applied, push is %g", g.cfg.Square.Push)
}

func TestPauseAndRestart(t *testing.T) {
	g := newTestGame(t, Options{})

	g.setPaused(true)
	if !g.paused {
		t.Fatalf("expected paused")
	}

	tr, _ := ecs.Get(g.world, g.square, component.TransformComponent.Kind())
	tr.X, tr.Y = 12, 34
	m, _ := ecs.Get(g.world, g.square, component.MotionComponent.Kind())
	m.Velocity = cp.Vector{X: -5}

	old := g.world
	g.restart()
	if g.paused {
		t.Fatalf("restart should resume")
	}
	if g.world == old {
		t.Fatalf("restart should build a new world")
	}
	tr, _ = ecs.Get(g.world, g.square, component.TransformComponent.Kind())
	if tr.X != 400 || tr.Y != 300 {
		t.Fatalf("expected square back at the centre, got %+v", tr)
	}
}

func TestQuitEndsLoop(t *testing.T) {
	g := newTestGame(t, Options{})
	g.quit = true
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("expected ebiten.Termination, got %v", err)
	}
}
