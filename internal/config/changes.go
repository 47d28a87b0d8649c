package config

import (
	"fmt"

	"github.com/san-kum/projsim/internal/projectile"
)

// Change records one field that differs between two configurations.
type Change struct {
	Field string
	Old   any
	New   any
}

func (c Change) String() string {
	switch c.Field {
	case "x":
		return fmt.Sprintf("X position: %.1f (m)", c.New)
	case "y":
		return fmt.Sprintf("Y position: %.1f (m)", c.New)
	case "vx":
		return fmt.Sprintf("VelocityX: %.2f (m/s)", c.New)
	case "vy":
		return fmt.Sprintf("VelocityY: %.2f (m/s)", c.New)
	case "dt":
		return fmt.Sprintf("Delta t: %.2f", c.New)
	case "drag":
		return fmt.Sprintf("Air Resistance: %.2f", c.New)
	case "method":
		state := "disabled"
		if c.New == projectile.SemiImplicitEuler {
			state = "enabled"
		}
		return fmt.Sprintf("Upgraded Euler's Method: %s", state)
	case "max_steps":
		return fmt.Sprintf("Max steps: %d", c.New)
	}
	return fmt.Sprintf("%s: %v", c.Field, c.New)
}

// Diff lists the fields of next that differ from prev, in a fixed order.
func Diff(prev, next *Config) []Change {
	var changes []Change
	addFloat := func(field string, a, b float64) {
		if a != b {
			changes = append(changes, Change{Field: field, Old: a, New: b})
		}
	}

	addFloat("x", prev.Launch.X, next.Launch.X)
	addFloat("y", prev.Launch.Y, next.Launch.Y)
	addFloat("vx", prev.Launch.VX, next.Launch.VX)
	addFloat("vy", prev.Launch.VY, next.Launch.VY)
	addFloat("dt", prev.Dt, next.Dt)
	addFloat("drag", prev.Drag, next.Drag)

	if prev.Method != next.Method {
		changes = append(changes, Change{Field: "method", Old: prev.Method, New: next.Method})
	}
	if prev.MaxSteps != next.MaxSteps {
		changes = append(changes, Change{Field: "max_steps", Old: prev.MaxSteps, New: next.MaxSteps})
	}
	return changes
}
