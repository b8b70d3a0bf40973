package component

// Thrust turns held arrow keys into acceleration of magnitude Push (px/s²).
// With ReleaseStops unset the last thrust stays applied after the key is let go.
type Thrust struct {
	Push         float64
	ReleaseStops bool
}

var ThrustComponent = NewComponent[Thrust]()
