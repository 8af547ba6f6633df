// Package storage persists prediction slates and locates the on-disk
// data inputs.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/puckcast/internal/config"
	"github.com/yourusername/puckcast/internal/models"
)

// Store manages the data directory: the predictions output file and the
// starting-goalie and injury input sheets.
type Store struct {
	dir             string
	predictionsFile string
	goaliesFile     string
	injuriesFile    string
	log             *logrus.Logger
}

// NewStore creates a store over the configured data directory.
func NewStore(cfg config.DataConfig, log *logrus.Logger) *Store {
	return &Store{
		dir:             cfg.Dir,
		predictionsFile: cfg.PredictionsFile,
		goaliesFile:     cfg.StartingGoaliesFile,
		injuriesFile:    cfg.InjuriesFile,
		log:             log,
	}
}

// GoaliesPath returns the starting-goalies sheet location.
func (s *Store) GoaliesPath() string {
	return filepath.Join(s.dir, s.goaliesFile)
}

// InjuriesPath returns the injury sheet location, empty when not
// configured.
func (s *Store) InjuriesPath() string {
	if s.injuriesFile == "" {
		return ""
	}
	return filepath.Join(s.dir, s.injuriesFile)
}

// PredictionsPath returns the slate output location.
func (s *Store) PredictionsPath() string {
	return filepath.Join(s.dir, s.predictionsFile)
}

// WriteSlate writes the slate to the predictions file and returns the
// path. The write goes through a temp file so a crashed run never
// leaves a truncated slate behind.
func (s *Store) WriteSlate(slate *models.Slate) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(slate, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal slate: %w", err)
	}

	path := s.PredictionsPath()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write slate: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("failed to move slate into place: %w", err)
	}

	s.log.WithFields(logrus.Fields{"path": path, "games": len(slate.Games)}).Info("Wrote prediction slate")
	return path, nil
}

// ReadSlate loads a previously written slate.
func (s *Store) ReadSlate() (*models.Slate, error) {
	data, err := os.ReadFile(s.PredictionsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read slate: %w", err)
	}

	slate := &models.Slate{}
	if err := json.Unmarshal(data, slate); err != nil {
		return nil, fmt.Errorf("failed to parse slate: %w", err)
	}
	return slate, nil
}
