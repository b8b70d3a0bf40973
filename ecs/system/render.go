package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

// RenderSystem clears the screen to the window background and fills every
// colored box.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	if e, ok := ecs.First(w, component.WindowBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, e, component.WindowBoundsComponent.Kind())
		screen.Fill(bounds.Background)
	} else {
		screen.Clear()
	}

	for _, rect := range filledRects(w) {
		vector.FillRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), rect.Color, false)
	}
}

type filledRect struct {
	X, Y          float64
	Width, Height float64
	Color         color.RGBA
}

// filledRects lists every colored box in screen space.
func filledRects(w *ecs.World) []filledRect {
	var rects []filledRect
	ecs.ForEach3(w, component.TransformComponent.Kind(), component.BoxComponent.Kind(), component.FillComponent.Kind(),
		func(_ ecs.Entity, t *component.Transform, box *component.Box, fill *component.Fill) {
			rects = append(rects, filledRect{X: t.X, Y: t.Y, Width: box.Width, Height: box.Height, Color: fill.Color})
		})
	return rects
}
