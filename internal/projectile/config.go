package projectile

import (
	"fmt"
	"math"

	"github.com/san-kum/projsim/internal/sim"
)

// Config is the full set of inputs for one integration run. It is read
// only for the duration of the call.
type Config struct {
	X0, Y0   float64 // launch position, m
	VX0, VY0 float64 // launch velocity, m/s
	Drag     float64 // linear drag coefficient, 1/s
	Dt       float64 // time step, s
	Method   Method
	// MaxSteps caps the number of steps; zero means sim.DefaultMaxSteps.
	MaxSteps int
}

// Validate reports the first out-of-domain field. Nothing is clamped.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"x0", c.X0}, {"y0", c.Y0}, {"vx0", c.VX0}, {"vy0", c.VY0},
		{"drag", c.Drag}, {"dt", c.Dt},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid(f.name, "must be finite, got %v", f.value)
		}
	}

	switch {
	case c.Y0 < 0:
		return invalid("y0", "launch below ground, got %g", c.Y0)
	case c.Dt <= 0:
		return invalid("dt", "must be positive, got %g", c.Dt)
	case c.Drag < 0:
		return invalid("drag", "must not be negative, got %g", c.Drag)
	case c.MaxSteps < 0:
		return invalid("max_steps", "must not be negative, got %d", c.MaxSteps)
	case !c.Method.Valid():
		return invalid("method", "unknown method %d", int(c.Method))
	}
	return nil
}

// Launch returns the initial state.
func (c Config) Launch() sim.State {
	return sim.State{X: c.X0, Y: c.Y0, VX: c.VX0, VY: c.VY0}
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfiguration, field, fmt.Sprintf(format, args...))
}
