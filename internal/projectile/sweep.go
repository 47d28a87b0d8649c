package projectile

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/projsim/internal/sim"
)

// Sweep integrates every configuration concurrently. Each run is independent;
// results are returned in input order. The first failure cancels the rest.
func Sweep(ctx context.Context, cfgs []Config) ([]sim.Trajectory, error) {
	results := make([]sim.Trajectory, len(cfgs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, cfg := range cfgs {
		g.Go(func() error {
			res, err := Run(ctx, cfg)
			if err != nil {
				return err
			}
			results[i] = res.Trajectory
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
