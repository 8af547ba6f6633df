// Package logger provides prediction-run logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// PredictionLogger provides dedicated logging for prediction runs.
type PredictionLogger struct {
	*logrus.Entry
}

// NewPredictionLogger creates a new prediction logger.
func NewPredictionLogger(baseLogger *logrus.Logger) *PredictionLogger {
	return &PredictionLogger{
		Entry: baseLogger.WithField("component", "predictor"),
	}
}

// LogFactorAbsent logs a factor that was excluded from a game's
// aggregate with the reason it could not be computed.
func (pl *PredictionLogger) LogFactorAbsent(gameID int64, matchup, factor, reason string) {
	pl.WithFields(logrus.Fields{
		"game_id": gameID,
		"matchup": matchup,
		"factor":  factor,
		"reason":  reason,
	}).Warn("Factor unavailable, reweighting remaining factors")
}

// LogMalformedStat logs an input value outside its sane domain.
func (pl *PredictionLogger) LogMalformedStat(gameID int64, factor string, value float64) {
	pl.WithFields(logrus.Fields{
		"game_id": gameID,
		"factor":  factor,
		"value":   value,
	}).Warn("Malformed stat value, clamping")
}

// LogGamePredicted logs a completed per-game prediction.
func (pl *PredictionLogger) LogGamePredicted(gameID int64, matchup string, homeWinProb float64, homeOdds, awayOdds, factorsUsed int) {
	pl.WithFields(logrus.Fields{
		"game_id":       gameID,
		"matchup":       matchup,
		"home_win_prob": homeWinProb,
		"home_odds":     homeOdds,
		"away_odds":     awayOdds,
		"factors_used":  factorsUsed,
	}).Info("Game prediction completed")
}

// LogSlateCompleted logs a finished run for a date.
func (pl *PredictionLogger) LogSlateCompleted(date string, games int, durationMs float64) {
	pl.WithFields(logrus.Fields{
		"date":        date,
		"games":       games,
		"duration_ms": durationMs,
	}).Info("Prediction slate completed")
}
