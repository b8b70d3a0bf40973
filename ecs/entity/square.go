package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bouncebox/config"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

// NewSquare spawns the player square with its top-left corner at the window
// centre, moving with the configured initial velocity.
func NewSquare(w *ecs.World, cfg config.Config) (ecs.Entity, error) {
	fill, err := config.ParseColor(cfg.Square.Color)
	if err != nil {
		return 0, fmt.Errorf("square: color: %w", err)
	}

	e := ecs.CreateEntity(w)
	steps := []struct {
		name string
		add  func() error
	}{
		{"tag", func() error {
			return ecs.Add(w, e, component.SquareTagComponent.Kind(), &component.SquareTag{})
		}},
		{"transform", func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
				X: float64(cfg.Window.Width) / 2,
				Y: float64(cfg.Window.Height) / 2,
			})
		}},
		{"motion", func() error {
			return ecs.Add(w, e, component.MotionComponent.Kind(), &component.Motion{
				Velocity: cp.Vector{X: cfg.Square.Velocity.X, Y: cfg.Square.Velocity.Y},
				Friction: cfg.Square.Friction,
			})
		}},
		{"thrust", func() error {
			return ecs.Add(w, e, component.ThrustComponent.Kind(), &component.Thrust{
				Push:         cfg.Square.Push,
				ReleaseStops: cfg.Square.ReleaseStopsThrust,
			})
		}},
		{"box", func() error {
			return ecs.Add(w, e, component.BoxComponent.Kind(), &component.Box{Width: cfg.Square.Size, Height: cfg.Square.Size})
		}},
		{"fill", func() error {
			return ecs.Add(w, e, component.FillComponent.Kind(), &component.Fill{Color: fill})
		}},
		{"input", func() error {
			return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
		}},
		{"bounce_counter", func() error {
			return ecs.Add(w, e, component.BounceCounterComponent.Kind(), &component.BounceCounter{})
		}},
	}
	for _, step := range steps {
		if err := step.add(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("square: add %s: %w", step.name, err)
		}
	}
	return e, nil
}
