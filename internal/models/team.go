package models

// StandingsRow represents a team's season and last-10 record from the
// standings endpoint. Immutable snapshot for the date being predicted.
type StandingsRow struct {
	Abbrev       string `json:"abbrev" validate:"required"`
	TeamName     string `json:"teamName"`
	Wins         int    `json:"wins" validate:"gte=0"`
	Losses       int    `json:"losses" validate:"gte=0"`
	OTLosses     int    `json:"otLosses" validate:"gte=0"`
	GamesPlayed  int    `json:"gamesPlayed" validate:"gte=0"`
	L10Wins      int    `json:"l10Wins" validate:"gte=0"`
	L10Losses    int    `json:"l10Losses" validate:"gte=0"`
	L10OTLosses  int    `json:"l10OtLosses" validate:"gte=0"`
	L10GamesPlayed int  `json:"l10GamesPlayed" validate:"gte=0"`
}

// SeasonWinPct returns the season points-style win rate with an OT loss
// credited as half a win. Zero games played returns a neutral 0.5.
func (s *StandingsRow) SeasonWinPct() float64 {
	return winPct(s.Wins, s.OTLosses, s.GamesPlayed)
}

// L10WinPct returns the last-10 win rate, OT losses credited as half a
// win. Zero games played returns a neutral 0.5.
func (s *StandingsRow) L10WinPct() float64 {
	return winPct(s.L10Wins, s.L10OTLosses, s.L10GamesPlayed)
}

func winPct(wins, otLosses, gamesPlayed int) float64 {
	if gamesPlayed <= 0 {
		return 0.5
	}
	return (float64(wins) + 0.5*float64(otLosses)) / float64(gamesPlayed)
}

// TeamSummary represents a team's season summary stats from the stats
// API: special teams percentages, shot volume and goal rates.
type TeamSummary struct {
	Abbrev           string  `json:"abbrev" validate:"required"`
	PowerPlayPct     float64 `json:"powerPlayPct" validate:"gte=0,lte=1"`
	PenaltyKillPct   float64 `json:"penaltyKillPct" validate:"gte=0,lte=1"`
	ShotsForPerGame  float64 `json:"shotsForPerGame" validate:"gte=0"`
	GoalsForPerGame  float64 `json:"goalsForPerGame" validate:"gte=0"`
	GoalsAgainstPerGame float64 `json:"goalsAgainstPerGame" validate:"gte=0"`
}

// SpecialTeamsAvg returns the average of power-play and penalty-kill
// percentages, the combined special-teams signal.
func (t *TeamSummary) SpecialTeamsAvg() float64 {
	return (t.PowerPlayPct + t.PenaltyKillPct) / 2.0
}

// GoalDiffPerGame returns goals for minus goals against per game.
func (t *TeamSummary) GoalDiffPerGame() float64 {
	return t.GoalsForPerGame - t.GoalsAgainstPerGame
}

// HeadToHead represents the completed meetings between two clubs this
// season, from the home team's perspective. Games == 0 means the clubs
// have not met yet.
type HeadToHead struct {
	HomeWins int `json:"homeWins" validate:"gte=0"`
	Games    int `json:"games" validate:"gte=0"`
}

// HomeWinPct returns the home team's win rate in the matchup. Only
// meaningful when Games > 0.
func (h *HeadToHead) HomeWinPct() float64 {
	if h.Games <= 0 {
		return 0.5
	}
	return float64(h.HomeWins) / float64(h.Games)
}
