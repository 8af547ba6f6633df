package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/puckcast/internal/database"
	"github.com/yourusername/puckcast/internal/models"
)

// PostgresPredictionRepository implements PredictionRepository for PostgreSQL
type PostgresPredictionRepository struct {
	db *database.DB
}

// NewPostgresPredictionRepository creates a new prediction repository
func NewPostgresPredictionRepository(db *database.DB) PredictionRepository {
	return &PostgresPredictionRepository{db: db}
}

// SaveSlate upserts every record of a slate within one transaction, so
// a re-run for the same date replaces its predictions atomically.
func (r *PostgresPredictionRepository) SaveSlate(ctx context.Context, slate *models.Slate) error {
	tx, err := r.db.GetPool().Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO predictions (game_id, game_date, home_team, away_team,
			home_win_prob, home_american_odds, away_american_odds, run_id, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (game_id, game_date) DO UPDATE SET
			home_team = EXCLUDED.home_team,
			away_team = EXCLUDED.away_team,
			home_win_prob = EXCLUDED.home_win_prob,
			home_american_odds = EXCLUDED.home_american_odds,
			away_american_odds = EXCLUDED.away_american_odds,
			run_id = EXCLUDED.run_id,
			generated_at = EXCLUDED.generated_at
	`

	for _, rec := range slate.Games {
		_, err := tx.Exec(ctx, query,
			rec.GameID, rec.Date, rec.HomeTeam, rec.AwayTeam,
			rec.HomeWinProb, rec.HomeAmericanOdds, rec.AwayAmericanOdds,
			slate.RunID, slate.GeneratedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert prediction for game %d: %w", rec.GameID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit slate: %w", err)
	}
	return nil
}

// GetByDate retrieves the stored predictions for a date in game-ID order
func (r *PostgresPredictionRepository) GetByDate(ctx context.Context, date string) ([]models.PredictionRecord, error) {
	query := `
		SELECT game_id, game_date::text, home_team, away_team,
		       home_win_prob, home_american_odds, away_american_odds
		FROM predictions WHERE game_date = $1
		ORDER BY game_id
	`

	rows, err := r.db.GetPool().Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	defer rows.Close()

	var records []models.PredictionRecord
	for rows.Next() {
		var rec models.PredictionRecord
		if err := rows.Scan(
			&rec.GameID, &rec.Date, &rec.HomeTeam, &rec.AwayTeam,
			&rec.HomeWinProb, &rec.HomeAmericanOdds, &rec.AwayAmericanOdds,
		); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read predictions: %w", err)
	}
	return records, nil
}
