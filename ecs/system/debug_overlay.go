package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	velocityLineScale     = 0.5
	accelerationLineScale = 0.1
	debugTextX            = 10
	debugTextY            = 50
)

// DebugStats is what the debug overlay prints.
type DebugStats struct {
	ActualFPS float64
	ActualTPS float64
	Frames    uint64
	DT        float64
	Bounces   int
	Held      []component.Direction
	Velocity  [2]float64
}

// DebugOverlaySystem draws motion vectors and loop stats on top of the frame.
type DebugOverlaySystem struct{}

func NewDebugOverlaySystem() *DebugOverlaySystem {
	return &DebugOverlaySystem{}
}

func (d *DebugOverlaySystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	stats := DebugStats{ActualFPS: ebiten.ActualFPS(), ActualTPS: ebiten.ActualTPS()}
	if e, ok := ecs.First(w, component.FrameClockComponent.Kind()); ok {
		clock, _ := ecs.Get(w, e, component.FrameClockComponent.Kind())
		stats.Frames = clock.Frames
		stats.DT = clock.DT
	}

	ecs.ForEach4(w, component.TransformComponent.Kind(), component.MotionComponent.Kind(), component.BoxComponent.Kind(), component.SquareTagComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, m *component.Motion, box *component.Box, _ *component.SquareTag) {
			cx := float32(t.X + box.Width/2)
			cy := float32(t.Y + box.Height/2)
			vector.StrokeLine(screen, cx, cy, cx+float32(m.Velocity.X*velocityLineScale), cy+float32(m.Velocity.Y*velocityLineScale), 2, colornames.Yellow, true)
			vector.StrokeLine(screen, cx, cy, cx+float32(m.Acceleration.X*accelerationLineScale), cy+float32(m.Acceleration.Y*accelerationLineScale), 2, colornames.Red, true)

			stats.Velocity = [2]float64{m.Velocity.X, m.Velocity.Y}
			if counter, ok := ecs.Get(w, e, component.BounceCounterComponent.Kind()); ok {
				stats.Bounces = counter.Total
			}
			if input, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
				stats.Held = input.Held
			}
		})

	ebitenutil.DebugPrintAt(screen, FormatDebugStats(stats), debugTextX, debugTextY)
}

func FormatDebugStats(s DebugStats) string {
	held := make([]string, 0, len(s.Held))
	for _, d := range s.Held {
		held = append(held, d.String())
	}
	heldText := "-"
	if len(held) > 0 {
		heldText = strings.Join(held, ",")
	}
	return fmt.Sprintf("FPS: %.2f  TPS: %.2f\nFrames: %d  dt: %.4fs\nVelocity: (%.1f, %.1f)\nBounces: %d\nHeld: %s",
		s.ActualFPS, s.ActualTPS, s.Frames, s.DT, s.Velocity[0], s.Velocity[1], s.Bounces, heldText)
}
