package integrators

import "github.com/san-kum/projsim/internal/sim"

// ImprovedEuler advances position with a half-step velocity and velocity
// with the full-step explicit update, both from the acceleration at the
// start of the step. It is neither Heun's method nor symplectic Euler;
// existing trajectories depend on this exact update order.
type ImprovedEuler struct{}

func NewImprovedEuler() *ImprovedEuler {
	return &ImprovedEuler{}
}

func (e *ImprovedEuler) Name() string { return "improved_euler" }

func (e *ImprovedEuler) Step(dyn sim.Dynamics, s sim.State, dt float64) sim.State {
	ax, ay := dyn.Accel(s)

	halfDt := dt / 2
	vxHalf := s.VX + ax*halfDt
	vyHalf := s.VY + ay*halfDt

	return sim.State{
		X:  s.X + vxHalf*dt,
		Y:  s.Y + vyHalf*dt,
		VX: s.VX + ax*dt,
		VY: s.VY + ay*dt,
	}
}
