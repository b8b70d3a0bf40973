package component

// BounceCounter tallies boundary hits per edge.
type BounceCounter struct {
	PerEdge [4]int
	Total   int
}

var BounceCounterComponent = NewComponent[BounceCounter]()
