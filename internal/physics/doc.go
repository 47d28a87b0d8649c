// Package physics provides the force model for projectile simulation.
//
// [LinearDrag] implements [sim.Dynamics] with constant downward gravity and
// an opposing acceleration proportional to velocity:
//
//	ax = -k*vx
//	ay = -g - k*vy
//
// The drag coefficient k has dimension 1/time; it is not the dimensionless
// aerodynamic drag coefficient.
//
// # Reference Solutions
//
// [VacuumState] gives the closed-form drag-free motion, useful for measuring
// the truncation error of an integrator:
//
//	p := physics.VacuumState(x0, t, physics.StandardGravity)
package physics
