package system

import (
	"math"
	"time"

	"github.com/milk9111/bouncebox/ecs"
	"github.com/milk9111/bouncebox/ecs/component"
)

const fallbackTPS = 60

// FrameTimingSystem advances the FrameClock singleton: it works out this
// tick's dt and the frame rate derived from it.
type FrameTimingSystem struct {
	now  func() time.Time
	last time.Time
}

// NewFrameTimingSystem uses now as the wall clock; nil means time.Now.
func NewFrameTimingSystem(now func() time.Time) *FrameTimingSystem {
	if now == nil {
		now = time.Now
	}
	return &FrameTimingSystem{now: now}
}

// Reset forgets the previous tick so the next measured dt is nominal. Call it
// after the loop was paused.
func (s *FrameTimingSystem) Reset() {
	s.last = time.Time{}
}

func (s *FrameTimingSystem) Update(w *ecs.World) {
	e, ok := ecs.First(w, component.FrameClockComponent.Kind())
	if !ok {
		return
	}
	clock, _ := ecs.Get(w, e, component.FrameClockComponent.Kind())

	clock.DT = s.step(clock)
	if clock.DT > 0 {
		clock.FPS = int(math.Round(1 / clock.DT))
	}
	clock.Frames++
}

func (s *FrameTimingSystem) step(clock *component.FrameClock) float64 {
	tps := clock.TPS
	if tps <= 0 {
		tps = fallbackTPS
	}
	nominal := 1 / float64(tps)

	if clock.Mode == component.TimingFixed {
		return nominal
	}

	now := s.now()
	if s.last.IsZero() {
		s.last = now
		return nominal
	}
	dt := now.Sub(s.last).Seconds()
	s.last = now

	if dt < 0 {
		dt = 0
	}
	if clock.MaxStep > 0 && dt > clock.MaxStep {
		dt = clock.MaxStep
	}
	return dt
}
