package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/projsim/internal/sim"
)

// TrajectorySVG renders the samples as a polyline with one marker per
// sample and the ground line at y = 0.
func TrajectorySVG(traj sim.Trajectory, width, height int, strokeColor string) string {
	if len(traj) < 2 {
		return ""
	}

	// Find bounds, always including the ground
	minX, maxX := traj[0].X, traj[0].X
	minY, maxY := 0.0, 0.0
	for _, p := range traj {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	toScreen := func(x, y float64) (float64, float64) {
		sx := (x - minX) / rangeX * float64(width)
		sy := float64(height) - (y-minY)/rangeY*float64(height)
		return sx, sy
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	_, groundY := toScreen(0, 0)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
`, groundY, width, groundY))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, p := range traj {
		x, y := toScreen(p.X, p.Y)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", strokeColor))
	for _, p := range traj {
		x, y := toScreen(p.X, p.Y)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2"><title>t=%.3f x=%.3f y=%.3f vx=%.3f vy=%.3f</title></circle>
`, x, y, p.T, p.X, p.Y, p.VX, p.VY))
	}
	sb.WriteString("</g>\n</svg>\n")

	return sb.String()
}
