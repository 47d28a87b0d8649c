package viz

import (
	"math"

	"github.com/san-kum/projsim/internal/sim"
)

const (
	minScale = 1e-3
	maxScale = 1e4
)

// Viewport maps world metres to canvas dots. Scale is dots per metre;
// the centre of the canvas shows (CenterX, CenterY).
type Viewport struct {
	CenterX, CenterY float64
	Scale            float64
}

func (v Viewport) ToDot(x, y float64, w, h int) (int, int) {
	px := (x-v.CenterX)*v.Scale + float64(w)/2
	py := float64(h)/2 - (y-v.CenterY)*v.Scale
	return int(math.Round(px)), int(math.Round(py))
}

func (v Viewport) ToWorld(px, py, w, h int) (float64, float64) {
	x := (float64(px)-float64(w)/2)/v.Scale + v.CenterX
	y := (float64(h)/2-float64(py))/v.Scale + v.CenterY
	return x, y
}

// Pan shifts the view by a number of dots.
func (v *Viewport) Pan(dx, dy int) {
	v.CenterX += float64(dx) / v.Scale
	v.CenterY -= float64(dy) / v.Scale
}

func (v *Viewport) Zoom(factor float64) {
	v.Scale = math.Min(maxScale, math.Max(minScale, v.Scale*factor))
}

// ZoomAt zooms by factor while keeping the world point under dot (px, py)
// fixed on screen.
func (v *Viewport) ZoomAt(factor float64, px, py, w, h int) {
	wx, wy := v.ToWorld(px, py, w, h)
	v.Zoom(factor)
	nx, ny := v.ToWorld(px, py, w, h)
	v.CenterX += wx - nx
	v.CenterY += wy - ny
}

// Fit frames every sample and the ground line with a small margin,
// keeping dots square.
func Fit(traj sim.Trajectory, w, h int) Viewport {
	if len(traj) == 0 || w <= 0 || h <= 0 {
		return Viewport{Scale: 1}
	}

	minX, maxX := traj[0].X, traj[0].X
	minY, maxY := 0.0, 0.0
	for _, p := range traj {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	rangeX := math.Max(maxX-minX, 1e-6)
	rangeY := math.Max(maxY-minY, 1e-6)
	scale := 0.9 * math.Min(float64(w)/rangeX, float64(h)/rangeY)

	return Viewport{
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
		Scale:   math.Min(maxScale, math.Max(minScale, scale)),
	}
}
