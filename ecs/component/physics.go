package component

import "github.com/jakecoffman/cp"

// Motion stores the kinematic state integrated each tick. Friction is the
// velocity factor applied once per tick.
type Motion struct {
	Velocity     cp.Vector
	Acceleration cp.Vector
	Friction     float64
}

var MotionComponent = NewComponent[Motion]()
