package entity

import (
	"fmt"

	"github.com/milk9111/bouncebox/common"
	"github.com/milk9111/bouncebox/config"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

// BuildWorld creates a world holding the bounds, clock, HUD and square
// described by cfg. It returns the square entity.
func BuildWorld(cfg config.Config) (*ecs.World, ecs.Entity, error) {
	w := ecs.NewWorld()
	if _, err := NewBounds(w, cfg); err != nil {
		return nil, 0, err
	}
	if _, err := NewClock(w, cfg); err != nil {
		return nil, 0, err
	}
	if _, err := NewHUD(w, cfg); err != nil {
		return nil, 0, err
	}
	square, err := NewSquare(w, cfg)
	if err != nil {
		return nil, 0, err
	}
	return w, square, nil
}

func NewBounds(w *ecs.World, cfg config.Config) (ecs.Entity, error) {
	bounds, err := boundsFromConfig(cfg)
	if err != nil {
		return 0, err
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.WindowBoundsComponent.Kind(), &bounds); err != nil {
		return 0, fmt.Errorf("bounds: add: %w", err)
	}
	return e, nil
}

func NewClock(w *ecs.World, cfg config.Config) (ecs.Entity, error) {
	clock := clockFromConfig(cfg)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.FrameClockComponent.Kind(), &clock); err != nil {
		return 0, fmt.Errorf("clock: add: %w", err)
	}
	return e, nil
}

func NewHUD(w *ecs.World, cfg config.Config) (ecs.Entity, error) {
	hud, err := hudFromConfig(cfg)
	if err != nil {
		return 0, err
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HUDComponent.Kind(), &hud); err != nil {
		return 0, fmt.Errorf("hud: add: %w", err)
	}
	return e, nil
}

// ApplyConfig pushes reloaded settings into a running world. Position and
// velocity are kept; the square is pulled back inside the new bounds.
func ApplyConfig(w *ecs.World, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	bounds, err := boundsFromConfig(cfg)
	if err != nil {
		return err
	}
	hud, err := hudFromConfig(cfg)
	if err != nil {
		return err
	}
	fill, err := config.ParseColor(cfg.Square.Color)
	if err != nil {
		return fmt.Errorf("square: color: %w", err)
	}

	ecs.ForEach(w, component.WindowBoundsComponent.Kind(), func(_ ecs.Entity, b *component.WindowBounds) {
		*b = bounds
	})
	ecs.ForEach(w, component.FrameClockComponent.Kind(), func(_ ecs.Entity, c *component.FrameClock) {
		next := clockFromConfig(cfg)
		c.Mode, c.TPS, c.MaxStep = next.Mode, next.TPS, next.MaxStep
	})
	ecs.ForEach(w, component.HUDComponent.Kind(), func(_ ecs.Entity, h *component.HUD) {
		*h = hud
	})

	ecs.ForEach(w, component.SquareTagComponent.Kind(), func(e ecs.Entity, _ *component.SquareTag) {
		if box, ok := ecs.Get(w, e, component.BoxComponent.Kind()); ok {
			box.Width, box.Height = cfg.Square.Size, cfg.Square.Size
		}
		if thrust, ok := ecs.Get(w, e, component.ThrustComponent.Kind()); ok {
			thrust.Push = cfg.Square.Push
			thrust.ReleaseStops = cfg.Square.ReleaseStopsThrust
		}
		if motion, ok := ecs.Get(w, e, component.MotionComponent.Kind()); ok {
			motion.Friction = cfg.Square.Friction
		}
		if f, ok := ecs.Get(w, e, component.FillComponent.Kind()); ok {
			f.Color = fill
		}
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = common.Clamp(t.X, 0, bounds.Width-cfg.Square.Size)
			t.Y = common.Clamp(t.Y, 0, bounds.Height-cfg.Square.Size)
		}
	})
	return nil
}

func boundsFromConfig(cfg config.Config) (component.WindowBounds, error) {
	bg, err := config.ParseColor(cfg.Window.Background)
	if err != nil {
		return component.WindowBounds{}, fmt.Errorf("bounds: background: %w", err)
	}
	return component.WindowBounds{
		Width:      float64(cfg.Window.Width),
		Height:     float64(cfg.Window.Height),
		Background: bg,
	}, nil
}

func clockFromConfig(cfg config.Config) component.FrameClock {
	mode := component.TimingMeasured
	if cfg.Timing.Mode == config.TimingFixed {
		mode = component.TimingFixed
	}
	return component.FrameClock{
		Mode:    mode,
		TPS:     cfg.Window.MaxFPS,
		MaxStep: cfg.Timing.MaxFrameStep,
	}
}

func hudFromConfig(cfg config.Config) (component.HUD, error) {
	c, err := config.ParseColor(cfg.HUD.Color)
	if err != nil {
		return component.HUD{}, fmt.Errorf("hud: color: %w", err)
	}
	return component.HUD{X: cfg.HUD.X, Y: cfg.HUD.Y, FontSize: cfg.HUD.FontSize, Color: c}, nil
}
