package sim

import (
	"context"
	"math"
)

type Simulator struct {
	dyn        Dynamics
	integrator Integrator
	metrics    []Metric
	observers  []Observer
}

func New(dyn Dynamics, integrator Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]Metric, 0),
		observers:  make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run integrates from x0 until the first sample below ground has been
// recorded. The launch sample is always first and the returned trajectory
// always ends with y < 0.
func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if err := validateState(x0); err != nil {
		return nil, err
	}

	maxSteps := cfg.MaxSteps
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}

	result := &Result{
		Trajectory: make(Trajectory, 0, 128),
		Metrics:    make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0
	t := 0.0
	dt := cfg.Dt

	for {
		p := Point{X: x.X, Y: x.Y, VX: x.VX, VY: x.VY, T: t}
		result.Trajectory = append(result.Trajectory, p)
		for _, m := range s.metrics {
			m.Observe(p)
		}
		for _, obs := range s.observers {
			obs.OnStep(p)
		}

		if x.Y < 0 {
			break
		}

		if result.StepsTaken >= maxSteps {
			return nil, &SimError{Step: result.StepsTaken, Time: t, State: x, Wrapped: ErrDivergence}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		x = s.integrator.Step(s.dyn, x, dt)
		t += dt
		result.StepsTaken++

		if !x.IsValid() {
			return nil, &SimError{Step: result.StepsTaken, Time: t, State: x, Wrapped: ErrDivergence}
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg Config) error {
	if math.IsNaN(cfg.Dt) || math.IsInf(cfg.Dt, 0) {
		return invalidf("dt must be finite, got %v", cfg.Dt)
	}
	if cfg.Dt <= 0 {
		return invalidf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.MaxSteps < 0 {
		return invalidf("max steps must not be negative, got %d", cfg.MaxSteps)
	}
	return nil
}

func validateState(x0 State) error {
	if !x0.IsValid() {
		return invalidf("initial state must be finite, got %+v", x0)
	}
	if x0.Y < 0 {
		return invalidf("launch height must not be negative, got %f", x0.Y)
	}
	return nil
}
