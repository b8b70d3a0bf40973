package system

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestMovementIntegrates(t *testing.T) {
	tests := []struct {
		name    string
		dt      float64
		accel   cp.Vector
		wantVel cp.Vector
		wantX   float64
		wantY   float64
	}{
		{
			name:    "friction_only",
			dt:      0.1,
			wantVel: cp.Vector{X: 95, Y: 95},
			wantX:   409.5,
			wantY:   309.5,
		},
		{
			name:    "with_acceleration",
			dt:      0.1,
			accel:   cp.Vector{X: 1000, Y: -1000},
			wantVel: cp.Vector{X: 190, Y: 0},
			wantX:   419,
			wantY:   300,
		},
		{
			name:    "zero_dt_is_noop",
			dt:      0,
			accel:   cp.Vector{X: 1000},
			wantVel: cp.Vector{X: 100, Y: 100},
			wantX:   400,
			wantY:   300,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, sq := newTestWorld(t, tc.dt, 400, 300, cp.Vector{X: 100, Y: 100})
			motionOf(t, w, sq).Acceleration = tc.accel

			NewMovementSystem().Update(w)

			m := motionOf(t, w, sq)
			tr := transformOf(t, w, sq)
			if !nearlyVec(m.Velocity, tc.wantVel) {
				t.Fatalf("expected velocity %v, got %v", tc.wantVel, m.Velocity)
			}
			if !nearly(tr.X, tc.wantX) || !nearly(tr.Y, tc.wantY) {
				t.Fatalf("expected position (%g, %g), got (%g, %g)", tc.wantX, tc.wantY, tr.X, tr.Y)
			}
		})
	}
}
