package models

import (
	"time"
)

// Game states reported by the schedule endpoint. Anything already
// underway or finished is not predictable.
const (
	GameStateFuture     = "FUT"
	GameStatePregame    = "PRE"
	GameStateLive       = "LIVE"
	GameStateCritical   = "CRIT"
	GameStateInProgress = "IN_PROGRESS"
	GameStateFinal      = "FINAL"
	GameStateOff        = "OFF"
)

// Game represents a single scheduled game for a target date
type Game struct {
	ID           int64     `json:"id" validate:"required"`
	Date         string    `json:"date" validate:"required,datetime=2006-01-02"`
	HomeAbbrev   string    `json:"homeAbbrev" validate:"required"`
	AwayAbbrev   string    `json:"awayAbbrev" validate:"required"`
	HomeID       int64     `json:"homeId"`
	AwayID       int64     `json:"awayId"`
	StartTimeUTC time.Time `json:"startTimeUTC"`
}

// IsPredictable reports whether the game is still upcoming
func IsPredictable(gameState string) bool {
	switch gameState {
	case GameStateOff, GameStateFinal, GameStateLive, GameStateCritical, GameStateInProgress:
		return false
	}
	return true
}

// Matchup returns the conventional "AWY @ HOM" label for logging
func (g *Game) Matchup() string {
	return g.AwayAbbrev + " @ " + g.HomeAbbrev
}
