package viz

import (
	"math"

	"github.com/san-kum/projsim/internal/sim"
)

const selectedMark = '●'

// Render draws the ground, the vertical axis and the trajectory, marking
// the selected sample. A negative selected index marks nothing.
func Render(c *Canvas, v Viewport, traj sim.Trajectory, selected int) {
	c.Clear()
	w, h := c.DotWidth(), c.DotHeight()

	_, groundY := v.ToDot(0, 0, w, h)
	if groundY >= 0 && groundY < h {
		for x := 0; x < w; x += 2 {
			c.Set(x, groundY)
		}
	}
	axisX, _ := v.ToDot(0, 0, w, h)
	if axisX >= 0 && axisX < w {
		for y := 0; y < h; y += 2 {
			c.Set(axisX, y)
		}
	}

	for i, p := range traj {
		x, y := v.ToDot(p.X, p.Y, w, h)
		if i == 0 {
			c.Set(x, y)
			continue
		}
		px, py := v.ToDot(traj[i-1].X, traj[i-1].Y, w, h)
		if offscreen(px, py, w, h) || offscreen(x, y, w, h) {
			c.Set(x, y)
			continue
		}
		c.DrawLine(px, py, x, y)
	}

	if selected >= 0 && selected < len(traj) {
		p := traj[selected]
		x, y := v.ToDot(p.X, p.Y, w, h)
		c.Mark(x, y, selectedMark)
	}
}

func offscreen(x, y, w, h int) bool {
	return x < -w || x > 2*w || y < -h || y > 2*h
}

// Nearest returns the index of the sample drawn closest to dot (px, py),
// or -1 for an empty trajectory.
func Nearest(traj sim.Trajectory, v Viewport, px, py, w, h int) int {
	best, bestDist := -1, math.Inf(1)
	for i, p := range traj {
		x, y := v.ToDot(p.X, p.Y, w, h)
		d := math.Hypot(float64(x-px), float64(y-py))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
