package database

import (
	"context"
	"fmt"

	"github.com/yourusername/puckcast/internal/config"
)

// Initialize creates a database connection pool and ensures the
// predictions schema exists.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func ensureSchema(ctx context.Context, db *DB) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS predictions (
			game_id            BIGINT NOT NULL,
			game_date          DATE NOT NULL,
			home_team          TEXT NOT NULL,
			away_team          TEXT NOT NULL,
			home_win_prob      DOUBLE PRECISION NOT NULL,
			home_american_odds INTEGER NOT NULL,
			away_american_odds INTEGER NOT NULL,
			run_id             UUID NOT NULL,
			generated_at       TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (game_id, game_date)
		);
		CREATE INDEX IF NOT EXISTS idx_predictions_date ON predictions (game_date);
	`
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure predictions schema: %w", err)
	}
	return nil
}
