package system

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDSystem draws the frame-rate readout.
type HUDSystem struct {
	source *text.GoTextFaceSource
}

func NewHUDSystem() (*HUDSystem, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("hud: load font: %w", err)
	}
	return &HUDSystem{source: s}, nil
}

// Draw places the readout with its baseline at the HUD position.
func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if screen == nil {
		return
	}
	r, ok := h.readout(w)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(r.Color)
	text.Draw(screen, r.Text, r.Face, op)
}

// hudReadout is the FPS text and the top-left corner it is drawn from.
type hudReadout struct {
	Text  string
	Face  *text.GoTextFace
	X, Y  float64
	Color color.RGBA
}

func (h *HUDSystem) readout(w *ecs.World) (hudReadout, bool) {
	if h == nil || w == nil {
		return hudReadout{}, false
	}
	he, ok := ecs.First(w, component.HUDComponent.Kind())
	if !ok {
		return hudReadout{}, false
	}
	ce, ok := ecs.First(w, component.FrameClockComponent.Kind())
	if !ok {
		return hudReadout{}, false
	}
	hud, _ := ecs.Get(w, he, component.HUDComponent.Kind())
	clock, _ := ecs.Get(w, ce, component.FrameClockComponent.Kind())

	face := &text.GoTextFace{Source: h.source, Size: hud.FontSize}
	// text.Draw anchors at the top of the line; shift up so Y is the baseline.
	return hudReadout{
		Text:  strconv.Itoa(clock.FPS),
		Face:  face,
		X:     hud.X,
		Y:     hud.Y - face.Metrics().HAscent,
		Color: hud.Color,
	}, true
}
