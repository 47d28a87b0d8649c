package physics

import (
	"math"

	"github.com/san-kum/projsim/internal/sim"
)

// VacuumState returns the exact drag-free state at time t for a launch at x0.
func VacuumState(x0 sim.State, t, g float64) sim.State {
	return sim.State{
		X:  x0.X + x0.VX*t,
		Y:  x0.Y + x0.VY*t - 0.5*g*t*t,
		VX: x0.VX,
		VY: x0.VY - g*t,
	}
}

// VacuumFlightTime returns the time at which the drag-free projectile
// returns to y = 0. Launches from y0 >= 0 always have a non-negative root.
func VacuumFlightTime(x0 sim.State, g float64) float64 {
	return (x0.VY + math.Sqrt(x0.VY*x0.VY+2*g*x0.Y)) / g
}
