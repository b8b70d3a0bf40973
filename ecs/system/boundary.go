package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

// BoundaryCollisionSystem bounces boxes off the window edges. A box past an
// edge is moved back inside, its velocity on that axis is turned to point
// away from the edge and its acceleration is cleared.
type BoundaryCollisionSystem struct{}

func NewBoundaryCollisionSystem() *BoundaryCollisionSystem {
	return &BoundaryCollisionSystem{}
}

func (s *BoundaryCollisionSystem) Update(w *ecs.World) {
	be, ok := ecs.First(w, component.WindowBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, be, component.WindowBoundsComponent.Kind())

	ecs.ForEach3(w, component.TransformComponent.Kind(), component.MotionComponent.Kind(), component.BoxComponent.Kind(),
		func(e ecs.Entity, t *component.Transform, m *component.Motion, box *component.Box) {
			hit := false
			push := func(edge component.Edge) {
				hit = true
				w.Events().Push(ecs.Event{Type: ecs.EventBoundaryHit, Data: ecs.BoundaryHit{Entity: e, Edge: edge}})
			}

			switch {
			case t.X < 0:
				t.X = 0
				m.Velocity.X = math.Abs(m.Velocity.X)
				push(component.EdgeLeft)
			case t.X+box.Width > bounds.Width:
				t.X = math.Max(0, bounds.Width-box.Width)
				m.Velocity.X = -math.Abs(m.Velocity.X)
				push(component.EdgeRight)
			}

			switch {
			case t.Y < 0:
				t.Y = 0
				m.Velocity.Y = math.Abs(m.Velocity.Y)
				push(component.EdgeTop)
			case t.Y+box.Height > bounds.Height:
				t.Y = math.Max(0, bounds.Height-box.Height)
				m.Velocity.Y = -math.Abs(m.Velocity.Y)
				push(component.EdgeBottom)
			}

			if hit {
				m.Acceleration = cp.Vector{}
			}
		})
}
