package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

// ThrustSystem points acceleration along the most recently pressed held arrow.
type ThrustSystem struct{}

func NewThrustSystem() *ThrustSystem {
	return &ThrustSystem{}
}

func (s *ThrustSystem) Update(w *ecs.World) {
	ecs.ForEach3(w, component.InputComponent.Kind(), component.ThrustComponent.Kind(), component.MotionComponent.Kind(),
		func(_ ecs.Entity, input *component.Input, thrust *component.Thrust, motion *component.Motion) {
			dir, ok := input.Latest()
			if !ok {
				if thrust.ReleaseStops {
					motion.Acceleration = cp.Vector{}
				}
				return
			}
			motion.Acceleration = cp.ForAngle(dir.Angle()).Mult(thrust.Push)
		})
}
