package projectile

import "github.com/san-kum/projsim/internal/sim"

var (
	// ErrInvalidConfiguration indicates an out-of-domain or non-finite input.
	ErrInvalidConfiguration = sim.ErrInvalidConfig

	// ErrSimulationDivergence indicates the step cap was exceeded or the
	// state became non-finite.
	ErrSimulationDivergence = sim.ErrDivergence
)
