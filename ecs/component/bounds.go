package component

import "image/color"

// WindowBounds stores the playfield size and the color it is cleared to.
type WindowBounds struct {
	Width      float64
	Height     float64
	Background color.RGBA
}

var WindowBoundsComponent = NewComponent[WindowBounds]()

// Edge names a side of the window.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}
