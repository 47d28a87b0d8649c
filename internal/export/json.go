package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/projsim/internal/config"
	"github.com/san-kum/projsim/internal/sim"
)

type Document struct {
	RunID     string             `json:"run_id"`
	Timestamp time.Time          `json:"timestamp"`
	Method    string             `json:"method"`
	Config    *config.Config     `json:"config"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
	Points    sim.Trajectory     `json:"points"`
}

func NewDocument(cfg *config.Config, result *sim.Result) *Document {
	return &Document{
		RunID:     uuid.NewString(),
		Timestamp: time.Now(),
		Method:    cfg.Method.String(),
		Config:    cfg,
		Steps:     result.StepsTaken,
		Metrics:   result.Metrics,
		Points:    result.Trajectory,
	}
}

func WriteJSON(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
