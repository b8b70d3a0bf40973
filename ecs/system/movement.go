package system

import (
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

// MovementSystem integrates v += a*dt, v *= friction, p += v*dt.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	dt := frameDT(w)
	if dt <= 0 {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.MotionComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, m *component.Motion) {
			m.Velocity = m.Velocity.Add(m.Acceleration.Mult(dt)).Mult(m.Friction)
			t.X += m.Velocity.X * dt
			t.Y += m.Velocity.Y * dt
		})
}

func frameDT(w *ecs.World) float64 {
	e, ok := ecs.First(w, component.FrameClockComponent.Kind())
	if !ok {
		return 0
	}
	clock, ok := ecs.Get(w, e, component.FrameClockComponent.Kind())
	if !ok {
		return 0
	}
	return clock.DT
}
