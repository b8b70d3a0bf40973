package component

import "math"

// Direction is one of the four arrow keys.
type Direction int

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions lists every direction in polling order.
var Directions = [...]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

// Angle returns the screen-space heading in radians (y grows downward).
func (d Direction) Angle() float64 {
	switch d {
	case DirectionUp:
		return -math.Pi / 2
	case DirectionDown:
		return math.Pi / 2
	case DirectionLeft:
		return math.Pi
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Input stores the held arrow keys, oldest press first.
type Input struct {
	Held []Direction
}

// Latest returns the most recently pressed direction still held.
func (in *Input) Latest() (Direction, bool) {
	if in == nil || len(in.Held) == 0 {
		return 0, false
	}
	return in.Held[len(in.Held)-1], true
}

// IsHeld reports whether d is currently held.
func (in *Input) IsHeld(d Direction) bool {
	if in == nil {
		return false
	}
	for _, h := range in.Held {
		if h == d {
			return true
		}
	}
	return false
}

var InputComponent = NewComponent[Input]()
