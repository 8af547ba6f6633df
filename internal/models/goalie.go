package models

// StartingGoalieEntry represents one row of the starting-goalies sheet
// for a date. Entries are matched to a game by ID first, then by the
// home/away abbreviation pair. Goalies may be given by player ID or by
// name; a name requires a search-API lookup before stats can be fetched.
type StartingGoalieEntry struct {
	GameID         int64  `json:"gameId,omitempty"`
	HomeAbbrev     string `json:"homeAbbrev,omitempty"`
	AwayAbbrev     string `json:"awayAbbrev,omitempty"`
	HomeGoalieID   int64  `json:"homeGoalieId,omitempty"`
	AwayGoalieID   int64  `json:"awayGoalieId,omitempty"`
	HomeGoalieName string `json:"homeGoalieName,omitempty"`
	AwayGoalieName string `json:"awayGoalieName,omitempty"`
}

// MatchesGame reports whether this entry refers to the given game.
func (e *StartingGoalieEntry) MatchesGame(g *Game) bool {
	if e.GameID != 0 && e.GameID == g.ID {
		return true
	}
	return e.HomeAbbrev == g.HomeAbbrev && e.AwayAbbrev == g.AwayAbbrev
}

// GoaliePair carries the resolved save percentages for both confirmed
// starters. The goalie factor is all-or-nothing: it exists only when
// both sides resolved.
type GoaliePair struct {
	HomeSavePct float64 `json:"homeSavePct" validate:"gte=0,lte=1"`
	AwaySavePct float64 `json:"awaySavePct" validate:"gte=0,lte=1"`
}

// InjuryReport represents one injured player on a date's injury sheet.
type InjuryReport struct {
	Team        string `json:"team" validate:"required"`
	Player      string `json:"player"`
	IsTopScorer bool   `json:"isTopScorer"`
}

// Severity returns the injury weight for this report: a missing top
// scorer counts for twice a depth player.
func (r *InjuryReport) Severity() float64 {
	if r.IsTopScorer {
		return 1.0
	}
	return 0.5
}
