package integrators

import "github.com/san-kum/projsim/internal/sim"

// Euler is the explicit Euler scheme: position advances with the velocity
// from the start of the step.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Name() string { return "explicit_euler" }

func (e *Euler) Step(dyn sim.Dynamics, s sim.State, dt float64) sim.State {
	ax, ay := dyn.Accel(s)
	return sim.State{
		X:  s.X + s.VX*dt,
		Y:  s.Y + s.VY*dt,
		VX: s.VX + ax*dt,
		VY: s.VY + ay*dt,
	}
}
