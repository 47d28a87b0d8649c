package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/projsim/internal/sim"
)

var csvHeader = []string{"t", "x", "y", "vx", "vy"}

// WriteCSV writes one row per sample with six fixed decimals.
func WriteCSV(w io.Writer, traj sim.Trajectory) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range traj {
		row := []string{
			formatFloat(p.T),
			formatFloat(p.X),
			formatFloat(p.Y),
			formatFloat(p.VX),
			formatFloat(p.VY),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
