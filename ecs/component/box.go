package component

// Box is an axis-aligned extent anchored at the entity Transform.
type Box struct {
	Width  float64
	Height float64
}

var BoxComponent = NewComponent[Box]()
