package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/sim"
)

// ErrNoCandidate is returned when no grid point produced a trajectory.
var ErrNoCandidate = errors.New("optim: no valid candidate in grid")

// Param is one axis of the search grid.
type Param struct {
	Name   string
	Values []float64
}

// Objective scores a finished run; lower is better.
type Objective func(r *sim.Result) float64

type Best struct {
	Params    map[string]float64
	Score     float64
	Config    projectile.Config
	Result    *sim.Result
	Evaluated int
}

type GridSearch struct {
	params []Param
}

func NewGridSearch(params ...Param) *GridSearch {
	return &GridSearch{params: params}
}

// Search integrates every combination of parameter values applied on top of
// base and returns the lowest-scoring one. Combinations that fail validation
// or diverge are skipped.
func (g *GridSearch) Search(ctx context.Context, base projectile.Config, objective Objective) (*Best, error) {
	for _, p := range g.params {
		check := base
		if err := Apply(&check, p.Name, 0); err != nil {
			return nil, err
		}
	}

	best := &Best{Score: math.Inf(1)}
	if err := g.searchRecursive(ctx, 0, base, make(map[string]float64), objective, best); err != nil {
		return nil, err
	}
	if best.Params == nil {
		return nil, ErrNoCandidate
	}
	return best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	cfg projectile.Config,
	current map[string]float64,
	objective Objective,
	best *Best,
) error {
	if depth == len(g.params) {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := projectile.Run(ctx, cfg)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		}
		best.Evaluated++

		score := objective(result)
		if score < best.Score {
			best.Score = score
			best.Config = cfg
			best.Result = result
			best.Params = make(map[string]float64, len(current))
			for k, v := range current {
				best.Params[k] = v
			}
		}
		return nil
	}

	p := g.params[depth]
	for _, val := range p.Values {
		next := cfg
		if err := Apply(&next, p.Name, val); err != nil {
			return err
		}
		current[p.Name] = val
		if err := g.searchRecursive(ctx, depth+1, next, current, objective, best); err != nil {
			return err
		}
	}
	delete(current, p.Name)
	return nil
}

// Apply sets the named launch parameter on cfg. "angle" (degrees above
// the horizontal) and "speed" rewrite the launch velocity in polar form,
// each keeping the other fixed.
func Apply(cfg *projectile.Config, name string, v float64) error {
	switch name {
	case "x":
		cfg.X0 = v
	case "y":
		cfg.Y0 = v
	case "vx":
		cfg.VX0 = v
	case "vy":
		cfg.VY0 = v
	case "drag":
		cfg.Drag = v
	case "dt":
		cfg.Dt = v
	case "angle":
		speed := math.Hypot(cfg.VX0, cfg.VY0)
		rad := v * math.Pi / 180
		cfg.VX0, cfg.VY0 = speed*math.Cos(rad), speed*math.Sin(rad)
	case "speed":
		angle := math.Atan2(cfg.VY0, cfg.VX0)
		cfg.VX0, cfg.VY0 = v*math.Cos(angle), v*math.Sin(angle)
	default:
		return fmt.Errorf("optim: unknown parameter %q", name)
	}
	return nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}

// TargetRange scores a run by how far it lands from target metres downrange.
func TargetRange(target float64) Objective {
	return func(r *sim.Result) float64 {
		return math.Abs(r.Trajectory.Range() - target)
	}
}

// MaxRange prefers the longest flight.
func MaxRange(r *sim.Result) float64 {
	return -r.Trajectory.Range()
}
