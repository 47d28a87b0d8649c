package metrics

import (
	"math"

	"github.com/san-kum/projsim/internal/sim"
)

type Apex struct {
	name    string
	height  float64
	samples int
}

func NewApex() *Apex {
	return &Apex{name: "apex"}
}

func (a *Apex) Name() string { return a.name }

func (a *Apex) Observe(p sim.Point) {
	if a.samples == 0 || p.Y > a.height {
		a.height = p.Y
	}
	a.samples++
}

func (a *Apex) Value() float64 { return a.height }

func (a *Apex) Reset() {
	a.height = 0
	a.samples = 0
}

// Range is the horizontal displacement between the first and latest sample.
type Range struct {
	name        string
	start, last float64
	samples     int
}

func NewRange() *Range {
	return &Range{name: "range"}
}

func (r *Range) Name() string { return r.name }

func (r *Range) Observe(p sim.Point) {
	if r.samples == 0 {
		r.start = p.X
	}
	r.last = p.X
	r.samples++
}

func (r *Range) Value() float64 { return r.last - r.start }

func (r *Range) Reset() {
	r.start, r.last = 0, 0
	r.samples = 0
}

type FlightTime struct {
	name string
	t    float64
}

func NewFlightTime() *FlightTime {
	return &FlightTime{name: "flight_time"}
}

func (f *FlightTime) Name() string        { return f.name }
func (f *FlightTime) Observe(p sim.Point) { f.t = p.T }
func (f *FlightTime) Value() float64      { return f.t }
func (f *FlightTime) Reset()              { f.t = 0 }

// ImpactSpeed is the speed of the latest sample, the first one below ground
// once a run has finished.
type ImpactSpeed struct {
	name  string
	speed float64
}

func NewImpactSpeed() *ImpactSpeed {
	return &ImpactSpeed{name: "impact_speed"}
}

func (s *ImpactSpeed) Name() string        { return s.name }
func (s *ImpactSpeed) Observe(p sim.Point) { s.speed = math.Hypot(p.VX, p.VY) }
func (s *ImpactSpeed) Value() float64      { return s.speed }
func (s *ImpactSpeed) Reset()              { s.speed = 0 }
