package system

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

const eps = 1e-9

type fakeKeys map[ebiten.Key]bool

func (f fakeKeys) IsKeyPressed(key ebiten.Key) bool {
	return f[key]
}

func nearly(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// newTestWorld builds an 800x600 world with a clock at the given dt and one
// 100px square at (x, y).
func newTestWorld(t *testing.T, dt float64, x, y float64, vel cp.Vector) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()

	clock := ecs.CreateEntity(w)
	mustAdd(t, w, clock, component.FrameClockComponent.Kind(), &component.FrameClock{Mode: component.TimingFixed, TPS: 60, DT: dt})

	bounds := ecs.CreateEntity(w)
	mustAdd(t, w, bounds, component.WindowBoundsComponent.Kind(), &component.WindowBounds{Width: 800, Height: 600})

	sq := ecs.CreateEntity(w)
	mustAdd(t, w, sq, component.SquareTagComponent.Kind(), &component.SquareTag{})
	mustAdd(t, w, sq, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, sq, component.MotionComponent.Kind(), &component.Motion{Velocity: vel, Friction: 0.95})
	mustAdd(t, w, sq, component.BoxComponent.Kind(), &component.Box{Width: 100, Height: 100})
	mustAdd(t, w, sq, component.ThrustComponent.Kind(), &component.Thrust{Push: 1000})
	mustAdd(t, w, sq, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, sq, component.BounceCounterComponent.Kind(), &component.BounceCounter{})
	return w, sq
}

func motionOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Motion {
	t.Helper()
	m, ok := ecs.Get(w, e, component.MotionComponent.Kind())
	if !ok {
		t.Fatalf("missing motion")
	}
	return m
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("missing transform")
	}
	return tr
}
