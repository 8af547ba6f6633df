package predictor

import (
	"github.com/yourusername/puckcast/internal/config"
	"github.com/yourusername/puckcast/internal/factor"
	"github.com/yourusername/puckcast/internal/logger"
	"github.com/yourusername/puckcast/internal/models"
)

// Model is the deterministic scoring engine: normalization, weighted
// aggregation with reweighting, logistic probability mapping and odds
// conversion. It holds no mutable state; identical inputs always yield
// identical records.
type Model struct {
	normalizer  *factor.Normalizer
	weights     WeightSpec
	sensitivity float64
	plog        *logger.PredictionLogger
}

// NewModel builds a model from the configured tunables.
func NewModel(cfg config.ModelConfig, plog *logger.PredictionLogger) *Model {
	return &Model{
		normalizer:  factor.NewNormalizer(cfg.HomeIceCredit, plog),
		weights:     WeightSpecFromConfig(cfg.Weights),
		sensitivity: cfg.Sensitivity,
		plog:        plog,
	}
}

// Weights exposes the model's weight table.
func (m *Model) Weights() WeightSpec {
	return m.weights
}

// Predict runs the full per-game pipeline on one game's raw inputs and
// returns the assembled record.
func (m *Model) Predict(game *models.Game, in *factor.GameInputs) models.PredictionRecord {
	set := m.normalizer.Normalize(game, in)
	score, used := Aggregate(set, m.weights)
	prob := WinProbability(score, m.sensitivity)
	homeOdds, awayOdds := AmericanOdds(prob)

	record := models.PredictionRecord{
		GameID:           game.ID,
		Date:             game.Date,
		HomeTeam:         game.HomeAbbrev,
		AwayTeam:         game.AwayAbbrev,
		HomeWinProb:      prob,
		HomeAmericanOdds: homeOdds,
		AwayAmericanOdds: awayOdds,
	}

	if m.plog != nil {
		m.plog.LogGamePredicted(game.ID, game.Matchup(), prob, homeOdds, awayOdds, used)
	}
	return record
}
