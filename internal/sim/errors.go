package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a run was requested with out-of-domain inputs.
	ErrInvalidConfig = errors.New("sim: invalid configuration")

	// ErrDivergence indicates the step cap was hit or the state left the finite range.
	ErrDivergence = errors.New("sim: simulation diverged")
)

// SimError wraps an error with the step at which the run stopped.
type SimError struct {
	Step    int
	Time    float64
	State   State
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
