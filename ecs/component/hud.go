package component

import "image/color"

// HUD places the frame-rate readout on screen.
type HUD struct {
	X        float64
	Y        float64
	FontSize float64
	Color    color.RGBA
}

var HUDComponent = NewComponent[HUD]()
