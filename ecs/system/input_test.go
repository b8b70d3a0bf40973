package system

import (
	"slices"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

func TestInputSystemKeepsPressOrder(t *testing.T) {
	keys := fakeKeys{}
	s := NewInputSystem(keys)
	w, sq := newTestWorld(t, 0, 0, 0, cp.Vector{})
	input, _ := ecs.Get(w, sq, component.InputComponent.Kind())

	frames := []struct {
		name string
		down []ebiten.Key
		want []component.Direction
	}{
		{"nothing", nil, nil},
		{"press_right", []ebiten.Key{ebiten.KeyArrowRight}, []component.Direction{component.DirectionRight}},
		{"add_up", []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyArrowUp}, []component.Direction{component.DirectionRight, component.DirectionUp}},
		{"release_right", []ebiten.Key{ebiten.KeyArrowUp}, []component.Direction{component.DirectionUp}},
		{"same_tick_uses_poll_order", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowLeft, ebiten.KeyArrowDown}, []component.Direction{component.DirectionUp, component.DirectionDown, component.DirectionLeft}},
		{"non_arrow_ignored", []ebiten.Key{ebiten.KeySpace}, nil},
	}

	for _, f := range frames {
		t.Run(f.name, func(t *testing.T) {
			clear(keys)
			for _, k := range f.down {
				keys[k] = true
			}
			s.Update(w)
			if !slices.Equal(input.Held, f.want) {
				t.Fatalf("expected held %v, got %v", f.want, input.Held)
			}
		})
	}
}

func TestInputLatest(t *testing.T) {
	var in component.Input
	if _, ok := in.Latest(); ok {
		t.Fatalf("expected no latest direction")
	}
	in.Held = []component.Direction{component.DirectionLeft, component.DirectionDown}
	if d, ok := in.Latest(); !ok || d != component.DirectionDown {
		t.Fatalf("expected down, got %v ok=%v", d, ok)
	}
	if !in.IsHeld(component.DirectionLeft) || in.IsHeld(component.DirectionUp) {
		t.Fatalf("IsHeld mismatch for %v", in.Held)
	}
}
