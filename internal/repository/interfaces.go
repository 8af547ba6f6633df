// Package repository persists prediction slates to Postgres.
package repository

import (
	"context"

	"github.com/yourusername/puckcast/internal/models"
)

// PredictionRepository defines slate persistence operations
type PredictionRepository interface {
	// SaveSlate upserts every record of a slate
	SaveSlate(ctx context.Context, slate *models.Slate) error

	// GetByDate retrieves the stored predictions for a date in game-ID order
	GetByDate(ctx context.Context, date string) ([]models.PredictionRecord, error)
}
