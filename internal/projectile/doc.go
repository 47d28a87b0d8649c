// Package projectile is the entry point for trajectory simulation.
//
// A caller fills a [Config] with the launch state, the drag coefficient, the
// time step and the update [Method], then calls [Integrate]:
//
//	cfg := projectile.Config{Y0: 1, VX0: 19.614, VY0: 9.807, Drag: 0.43, Dt: 0.1}
//	traj, err := projectile.Integrate(cfg)
//
// The returned trajectory starts with the launch sample at t = 0 and ends with
// the first sample below ground. No interpolation to the exact impact instant
// is performed.
//
// Integrate is a pure function of its input: it performs no I/O, keeps no
// state between calls and returns bit-identical results for identical
// configurations. Out-of-domain configurations fail with
// [ErrInvalidConfiguration]; a run that exceeds its step cap fails with
// [ErrSimulationDivergence]. Neither returns a partial trajectory.
package projectile
