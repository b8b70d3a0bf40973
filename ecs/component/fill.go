package component

import "image/color"

type Fill struct {
	Color color.RGBA
}

var FillComponent = NewComponent[Fill]()
