package projectile

import (
	"fmt"

	"github.com/san-kum/projsim/internal/integrators"
	"github.com/san-kum/projsim/internal/sim"
)

var registry = map[Method]func() sim.Integrator{
	ExplicitEuler:     func() sim.Integrator { return integrators.NewEuler() },
	SemiImplicitEuler: func() sim.Integrator { return integrators.NewImprovedEuler() },
}

// IntegratorFor returns a fresh integrator implementing m.
func IntegratorFor(m Method) (sim.Integrator, error) {
	fn, ok := registry[m]
	if !ok {
		return nil, fmt.Errorf("%w: unknown method %s", ErrInvalidConfiguration, m)
	}
	return fn(), nil
}
