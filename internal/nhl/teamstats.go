package nhl

import (
	"context"
	"fmt"

	"github.com/yourusername/puckcast/internal/models"
)

type teamSummaryResponse struct {
	Data []teamSummaryEntry `json:"data"`
}

type teamSummaryEntry struct {
	TeamFullName        string   `json:"teamFullName"`
	PowerPlayPct        *float64 `json:"powerPlayPct"`
	PenaltyKillPct      *float64 `json:"penaltyKillPct"`
	ShotsForPerGame     *float64 `json:"shotsForPerGame"`
	GoalsForPerGame     *float64 `json:"goalsForPerGame"`
	GoalsAgainstPerGame *float64 `json:"goalsAgainstPerGame"`
}

// FetchTeamSummaries returns per-team season summary stats (special
// teams percentages, shot volume, goal rates) keyed by abbreviation.
// The stats API keys rows by full team name, so the standings name
// index is required for the join.
func (c *Client) FetchTeamSummaries(ctx context.Context, seasonID int64, nameToAbbrev map[string]string) (map[string]models.TeamSummary, error) {
	url := fmt.Sprintf(
		"%s/team/summary?limit=50&sort=gamesPlayed&order=desc&cayenneExp=gameTypeId=2%%20and%%20seasonId=%d",
		c.statsBaseURL, seasonID,
	)

	var resp teamSummaryResponse
	if err := c.getJSON(ctx, "team_summary", url, &resp); err != nil {
		return nil, err
	}

	byAbbrev := make(map[string]models.TeamSummary, len(resp.Data))
	for _, row := range resp.Data {
		abbrev, ok := nameToAbbrev[row.TeamFullName]
		if !ok {
			c.log.Debugf("No abbreviation mapping for team %q, skipping summary row", row.TeamFullName)
			continue
		}
		byAbbrev[abbrev] = models.TeamSummary{
			Abbrev:              abbrev,
			PowerPlayPct:        floatOr(row.PowerPlayPct, 0),
			PenaltyKillPct:      floatOr(row.PenaltyKillPct, 0),
			ShotsForPerGame:     floatOr(row.ShotsForPerGame, 0),
			GoalsForPerGame:     floatOr(row.GoalsForPerGame, 0),
			GoalsAgainstPerGame: floatOr(row.GoalsAgainstPerGame, 0),
		}
	}
	return byAbbrev, nil
}

func floatOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
