package projectile

import (
	"context"

	"github.com/san-kum/projsim/internal/physics"
	"github.com/san-kum/projsim/internal/sim"
)

// Integrate simulates cfg from launch to the first sample below ground.
func Integrate(cfg Config) (sim.Trajectory, error) {
	result, err := Run(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	return result.Trajectory, nil
}

// Run is Integrate with caller-supplied metrics and a context checked
// between steps.
func Run(ctx context.Context, cfg Config, metrics ...sim.Metric) (*sim.Result, error) {
	return run(ctx, cfg, nil, metrics)
}

// Trace is Run with obs notified of every recorded sample, in order.
func Trace(ctx context.Context, cfg Config, obs sim.Observer, metrics ...sim.Metric) (*sim.Result, error) {
	return run(ctx, cfg, obs, metrics)
}

func run(ctx context.Context, cfg Config, obs sim.Observer, metrics []sim.Metric) (*sim.Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	integ, err := IntegratorFor(cfg.Method)
	if err != nil {
		return nil, err
	}

	s := sim.New(physics.NewLinearDrag(cfg.Drag), integ)
	for _, m := range metrics {
		s.AddMetric(m)
	}
	if obs != nil {
		s.AddObserver(obs)
	}

	return s.Run(ctx, cfg.Launch(), sim.Config{Dt: cfg.Dt, MaxSteps: cfg.MaxSteps})
}
