package export

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Formats lists the extensions WriteFile understands.
var Formats = []string{".csv", ".json", ".svg", ".png"}

// WriteFile writes doc in the format named by the path extension.
func WriteFile(path string, doc *Document) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(Formats, ext) {
		return fmt.Errorf("unsupported export format %q (want one of %v)", ext, Formats)
	}

	if ext == ".png" {
		series := []Series{{Label: doc.Method, Trajectory: doc.Points}}
		return WritePNG(path, "trajectory", series, 6*vg.Inch, 4*vg.Inch)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".csv":
		err = WriteCSV(f, doc.Points)
	case ".json":
		err = WriteJSON(f, doc)
	case ".svg":
		_, err = f.WriteString(TrajectorySVG(doc.Points, 800, 500, "#00ff88"))
	}
	if err != nil {
		return err
	}
	return f.Close()
}
