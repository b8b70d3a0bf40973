package system

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

// KeyReader reports whether a key is held this tick.
type KeyReader interface {
	IsKeyPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

var directionKeys = map[component.Direction]ebiten.Key{
	component.DirectionUp:    ebiten.KeyArrowUp,
	component.DirectionDown:  ebiten.KeyArrowDown,
	component.DirectionLeft:  ebiten.KeyArrowLeft,
	component.DirectionRight: ebiten.KeyArrowRight,
}

type InputSystem struct {
	keys KeyReader
}

// NewInputSystem polls keys; nil reads the ebiten keyboard.
func NewInputSystem(keys KeyReader) *InputSystem {
	if keys == nil {
		keys = ebitenKeys{}
	}
	return &InputSystem{keys: keys}
}

// Update keeps each Input's held list in press order: released keys drop out
// and new presses are appended in Directions order.
func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var pressed [len(component.Directions)]bool
	for idx, dir := range component.Directions {
		pressed[idx] = i.keys.IsKeyPressed(directionKeys[dir])
	}
	isPressed := func(d component.Direction) bool {
		idx := slices.Index(component.Directions[:], d)
		return idx >= 0 && pressed[idx]
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Held = slices.DeleteFunc(input.Held, func(d component.Direction) bool {
			return !isPressed(d)
		})
		for idx, dir := range component.Directions {
			if pressed[idx] && !input.IsHeld(dir) {
				input.Held = append(input.Held, dir)
			}
		}
	})
}
