package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

// BounceLogSystem consumes boundary hits: it tallies them on the entity's
// BounceCounter and logs each one at debug level. Schedule it last.
type BounceLogSystem struct {
	logger *log.Logger
}

func NewBounceLogSystem(logger *log.Logger) *BounceLogSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &BounceLogSystem{logger: logger}
}

func (s *BounceLogSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventBoundaryHit {
			continue
		}
		hit, ok := evt.Data.(ecs.BoundaryHit)
		if !ok {
			continue
		}
		counter, ok := ecs.Get(w, hit.Entity, component.BounceCounterComponent.Kind())
		if !ok {
			continue
		}
		counter.PerEdge[hit.Edge]++
		counter.Total++
		s.logger.Debug("boundary hit", "entity", hit.Entity, "edge", hit.Edge, "total", counter.Total)
	}
}
