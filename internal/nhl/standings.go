package nhl

import (
	"context"
	"fmt"

	"github.com/yourusername/puckcast/internal/models"
)

type standingsResponse struct {
	Standings []standingsEntry `json:"standings"`
}

type standingsEntry struct {
	TeamAbbrev     localized `json:"teamAbbrev"`
	TeamName       localized `json:"teamName"`
	Wins           int       `json:"wins"`
	Losses         int       `json:"losses"`
	OTLosses       int       `json:"otLosses"`
	GamesPlayed    int       `json:"gamesPlayed"`
	L10Wins        int       `json:"l10Wins"`
	L10Losses      int       `json:"l10Losses"`
	L10OTLosses    int       `json:"l10OtLosses"`
	L10GamesPlayed int       `json:"l10GamesPlayed"`
}

// Standings holds the league standings keyed by team abbreviation,
// along with the full-name index the stats API responses are joined on.
type Standings struct {
	ByAbbrev     map[string]models.StandingsRow
	NameToAbbrev map[string]string
}

// Row returns the standings row for a team.
func (s *Standings) Row(abbrev string) (*models.StandingsRow, error) {
	row, ok := s.ByAbbrev[abbrev]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrTeamNotFound, abbrev)
	}
	return &row, nil
}

// FetchStandings returns current league standings with season and
// last-10 records for every team.
func (c *Client) FetchStandings(ctx context.Context) (*Standings, error) {
	url := fmt.Sprintf("%s/standings/now", c.webBaseURL)

	var resp standingsResponse
	if err := c.getJSON(ctx, "standings", url, &resp); err != nil {
		return nil, err
	}

	standings := &Standings{
		ByAbbrev:     make(map[string]models.StandingsRow, len(resp.Standings)),
		NameToAbbrev: make(map[string]string, len(resp.Standings)),
	}
	for _, row := range resp.Standings {
		abbrev := row.TeamAbbrev.Default
		if abbrev == "" {
			continue
		}
		standings.ByAbbrev[abbrev] = models.StandingsRow{
			Abbrev:         abbrev,
			TeamName:       row.TeamName.Default,
			Wins:           row.Wins,
			Losses:         row.Losses,
			OTLosses:       row.OTLosses,
			GamesPlayed:    row.GamesPlayed,
			L10Wins:        row.L10Wins,
			L10Losses:      row.L10Losses,
			L10OTLosses:    row.L10OTLosses,
			L10GamesPlayed: row.L10GamesPlayed,
		}
		if row.TeamName.Default != "" {
			standings.NameToAbbrev[row.TeamName.Default] = abbrev
		}
	}
	return standings, nil
}
