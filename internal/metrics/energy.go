package metrics

import (
	"math"

	"github.com/san-kum/projsim/internal/physics"
	"github.com/san-kum/projsim/internal/sim"
)

// EnergyLoss reports the fraction of the launch's specific mechanical
// energy that is gone by the latest sample.
type EnergyLoss struct {
	name          string
	gravity       float64
	initialEnergy float64
	currentEnergy float64
	samples       int
}

func NewEnergyLoss(gravity float64) *EnergyLoss {
	return &EnergyLoss{
		name:    "energy_loss",
		gravity: gravity,
	}
}

func (e *EnergyLoss) Name() string { return e.name }

func (e *EnergyLoss) Observe(p sim.Point) {
	energy := physics.SpecificEnergy(p.State(), e.gravity)
	if e.samples == 0 {
		e.initialEnergy = energy
	}
	e.currentEnergy = energy
	e.samples++
}

func (e *EnergyLoss) Value() float64 {
	if e.initialEnergy == 0 {
		return 0
	}
	return (e.initialEnergy - e.currentEnergy) / math.Abs(e.initialEnergy)
}

func (e *EnergyLoss) Reset() {
	e.initialEnergy = 0
	e.currentEnergy = 0
	e.samples = 0
}

// Defaults returns the summary metrics reported for every run.
func Defaults(gravity float64) []sim.Metric {
	return []sim.Metric{
		NewApex(),
		NewRange(),
		NewFlightTime(),
		NewImpactSpeed(),
		NewEnergyLoss(gravity),
	}
}
