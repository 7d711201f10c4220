package output

import (
	"encoding/json"

	"github.com/rpgo/mcplanner/internal/domain"
)

// JSONFormatter serializes the simulation report as pretty-printed JSON.
// Raw paths are dropped unless IncludePaths is set.
type JSONFormatter struct {
	IncludePaths bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.SimulationReport) ([]byte, error) {
	if !j.IncludePaths {
		report = report.WithoutPaths()
	}
	return json.MarshalIndent(report, "", "  ")
}
