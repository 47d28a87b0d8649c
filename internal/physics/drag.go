package physics

import "github.com/san-kum/projsim/internal/sim"

// StandardGravity is the downward acceleration in m/s².
const StandardGravity = 9.807

type LinearDrag struct {
	Gravity float64
	K       float64
}

func NewLinearDrag(k float64) *LinearDrag {
	return &LinearDrag{Gravity: StandardGravity, K: k}
}

func (d *LinearDrag) Accel(s sim.State) (float64, float64) {
	ax := -d.K * s.VX
	ay := -d.Gravity - d.K*s.VY
	return ax, ay
}

// SpecificEnergy returns kinetic plus potential energy per unit mass (J/kg),
// with ground level as the zero of potential.
func SpecificEnergy(s sim.State, g float64) float64 {
	return 0.5*(s.VX*s.VX+s.VY*s.VY) + g*s.Y
}
