package sim

import "math"

// State is the phase-space state threaded through one integration run.
type State struct {
	X, Y   float64
	VX, VY float64
}

func (s State) IsValid() bool {
	for _, v := range [...]float64{s.X, s.Y, s.VX, s.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// Point is one recorded trajectory sample.
type Point struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
	T  float64 `json:"t"`
}

func (p Point) State() State {
	return State{X: p.X, Y: p.Y, VX: p.VX, VY: p.VY}
}

func (p Point) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// Trajectory is the ordered sample sequence of one run, launch first.
type Trajectory []Point

func (tr Trajectory) Last() (Point, bool) {
	if len(tr) == 0 {
		return Point{}, false
	}
	return tr[len(tr)-1], true
}

// Impact returns the final sample, the first one recorded below ground.
func (tr Trajectory) Impact() Point {
	p, _ := tr.Last()
	return p
}

// Apex returns the sample with the greatest height.
func (tr Trajectory) Apex() Point {
	if len(tr) == 0 {
		return Point{}
	}
	best := tr[0]
	for _, p := range tr[1:] {
		if p.Y > best.Y {
			best = p
		}
	}
	return best
}

func (tr Trajectory) Range() float64 {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1].X - tr[0].X
}

func (tr Trajectory) FlightTime() float64 {
	return tr.Impact().T
}

// Heights returns the y series, the shape asciigraph and friends consume.
func (tr Trajectory) Heights() []float64 {
	ys := make([]float64, len(tr))
	for i, p := range tr {
		ys[i] = p.Y
	}
	return ys
}

type Dynamics interface {
	Accel(s State) (ax, ay float64)
}

type Integrator interface {
	Name() string
	Step(dyn Dynamics, s State, dt float64) State
}

type Metric interface {
	Name() string
	Observe(p Point)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(p Point)
}

// DefaultMaxSteps bounds a run when Config.MaxSteps is zero.
const DefaultMaxSteps = 1_000_000

type Config struct {
	Dt       float64
	MaxSteps int
}

type Result struct {
	Trajectory Trajectory
	Metrics    map[string]float64
	StepsTaken int
}
