package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/metrics"
	"github.com/san-kum/projsim/internal/physics"
	"github.com/san-kum/projsim/internal/projectile"
	"github.com/san-kum/projsim/internal/sim"
)

// rollOff is a horizontal launch from the ground: three samples at dt = 1.
func rollOff(t *testing.T) (*config.Config, *sim.Result) {
	t.Helper()

	cfg := &config.Config{
		Launch: config.LaunchConfig{VX: 1},
		Dt:     1,
		Method: projectile.ExplicitEuler,
	}
	res, err := projectile.Run(t.Context(), cfg.Projectile(), metrics.Defaults(physics.StandardGravity)...)
	require.NoError(t, err)
	require.Len(t, res.Trajectory, 3)
	return cfg, res
}

func TestWriteCSV(t *testing.T) {
	_, res := rollOff(t)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, res.Trajectory))

	g := goldie.New(t)
	g.Assert(t, "trajectory_csv", buf.Bytes())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "t,x,y,vx,vy\n", buf.String())
}

func TestTrajectorySVG(t *testing.T) {
	_, res := rollOff(t)

	svg := TrajectorySVG(res.Trajectory, 200, 100, "#ff8800")

	g := goldie.New(t)
	g.Assert(t, "trajectory_svg", []byte(svg))
}

func TestTrajectorySVGTooShort(t *testing.T) {
	assert.Empty(t, TrajectorySVG(sim.Trajectory{{Y: -1}}, 100, 100, "#fff"))
}

func TestWriteJSON(t *testing.T) {
	cfg, res := rollOff(t)
	doc := NewDocument(cfg, res)

	_, err := uuid.Parse(doc.RunID)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, doc))

	var decoded struct {
		RunID  string             `json:"run_id"`
		Method string             `json:"method"`
		Steps  int                `json:"steps"`
		Config map[string]any     `json:"config"`
		Points []sim.Point        `json:"points"`
		Metric map[string]float64 `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, doc.RunID, decoded.RunID)
	assert.Equal(t, "explicit_euler", decoded.Method)
	assert.Equal(t, "explicit_euler", decoded.Config["method"])
	assert.Equal(t, 2, decoded.Steps)
	assert.Equal(t, []sim.Point(res.Trajectory), decoded.Points)
	assert.InDelta(t, 2.0, decoded.Metric["range"], 1e-12)
}

func TestNewDocumentUniqueIDs(t *testing.T) {
	cfg, res := rollOff(t)
	assert.NotEqual(t, NewDocument(cfg, res).RunID, NewDocument(cfg, res).RunID)
}

func TestWriteFile(t *testing.T) {
	cfg, res := rollOff(t)
	doc := NewDocument(cfg, res)
	dir := t.TempDir()

	for _, ext := range Formats {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "run"+ext)
			require.NoError(t, WriteFile(path, doc))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}

func TestWriteFileUnsupported(t *testing.T) {
	cfg, res := rollOff(t)
	path := filepath.Join(t.TempDir(), "run.hdf5")

	err := WriteFile(path, NewDocument(cfg, res))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".hdf5")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file is created for unknown formats")
}

func TestNewPlot(t *testing.T) {
	_, res := rollOff(t)

	p, err := NewPlot("compare", []Series{
		{Label: "a", Trajectory: res.Trajectory},
		{Label: "b", Trajectory: res.Trajectory},
	})
	require.NoError(t, err)
	assert.Equal(t, "compare", p.Title.Text)
	assert.Equal(t, "x (m)", p.X.Label.Text)
}
