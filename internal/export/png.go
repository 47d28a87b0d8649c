package export

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/projsim/internal/sim"
)

// Series is one labelled trajectory on a shared plot.
type Series struct {
	Label      string
	Trajectory sim.Trajectory
}

func trajectoryXYs(traj sim.Trajectory) plotter.XYs {
	xys := make(plotter.XYs, len(traj))
	for i, p := range traj {
		xys[i].X = p.X
		xys[i].Y = p.Y
	}
	return xys
}

// NewPlot builds a y-over-x plot with one line and marker set per series.
func NewPlot(title string, series []Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	p.Add(plotter.NewGrid())

	for i, s := range series {
		line, points, err := plotter.NewLinePoints(trajectoryXYs(s.Trajectory))
		if err != nil {
			return nil, err
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}
	return p, nil
}

// WritePNG saves the plot; the image format follows the path extension.
func WritePNG(path, title string, series []Series, width, height vg.Length) error {
	p, err := NewPlot(title, series)
	if err != nil {
		return err
	}
	return p.Save(width, height, path)
}
