// Package injury loads the per-date injury report that feeds the
// optional injury factor.
package injury

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yourusername/puckcast/internal/models"
)

// Sheet is the injury report keyed by ISO date.
type Sheet map[string][]models.InjuryReport

// LoadSheet reads the injuries file. A missing file is an empty sheet.
func LoadSheet(path string) (Sheet, error) {
	if path == "" {
		return Sheet{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Sheet{}, nil
		}
		return nil, fmt.Errorf("failed to read injuries file: %w", err)
	}

	var sheet Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse injuries file: %w", err)
	}
	return sheet, nil
}

// TeamSeverity returns the worst injury severity reported for a team on
// a date: 1.0 for a missing top scorer, 0.5 for a depth player, 0 when
// nothing is reported.
func (s Sheet) TeamSeverity(date, team string) float64 {
	severity := 0.0
	for _, report := range s[date] {
		if report.Team != team {
			continue
		}
		if v := report.Severity(); v > severity {
			severity = v
		}
	}
	return severity
}
