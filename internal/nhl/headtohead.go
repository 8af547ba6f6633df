package nhl

import (
	"context"
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/yourusername/puckcast/internal/models"
)

const regularSeasonGameType = 2

type clubScheduleResponse struct {
	Games []clubScheduleGame `json:"games"`
}

type clubScheduleGame struct {
	GameType  int          `json:"gameType"`
	Season    int64        `json:"season"`
	GameState string       `json:"gameState"`
	HomeTeam  scheduleClub `json:"homeTeam"`
	AwayTeam  scheduleClub `json:"awayTeam"`
}

// FetchHeadToHead returns the completed regular-season meetings between
// home and away this season, from the home side's perspective. Zero
// games means the clubs have not met yet.
func (c *Client) FetchHeadToHead(ctx context.Context, homeAbbrev, awayAbbrev string, seasonID int64) (*models.HeadToHead, error) {
	games, err := c.fetchClubSchedule(ctx, homeAbbrev)
	if err != nil {
		return nil, err
	}

	h2h := &models.HeadToHead{}
	for _, g := range games {
		if g.GameType != regularSeasonGameType || g.Season != seasonID {
			continue
		}
		if g.GameState != models.GameStateOff && g.GameState != models.GameStateFinal {
			continue
		}
		h := g.HomeTeam.abbrev()
		a := g.AwayTeam.abbrev()
		if h == "" || a == "" || g.HomeTeam.Score == nil || g.AwayTeam.Score == nil {
			continue
		}

		switch {
		case h == homeAbbrev && a == awayAbbrev:
			h2h.Games++
			if *g.HomeTeam.Score > *g.AwayTeam.Score {
				h2h.HomeWins++
			}
		case h == awayAbbrev && a == homeAbbrev:
			h2h.Games++
			if *g.AwayTeam.Score > *g.HomeTeam.Score {
				h2h.HomeWins++
			}
		}
	}
	return h2h, nil
}

// fetchClubSchedule returns a team's full season schedule, cached per
// team so a slate of games only fetches each club once.
func (c *Client) fetchClubSchedule(ctx context.Context, abbrev string) ([]clubScheduleGame, error) {
	key := strings.ToUpper(abbrev)
	if cached, ok := c.scheduleCache.Get(key); ok {
		return cached.([]clubScheduleGame), nil
	}

	url := fmt.Sprintf("%s/club-schedule-season/%s/now", c.webBaseURL, key)

	var resp clubScheduleResponse
	if err := c.getJSON(ctx, "club_schedule", url, &resp); err != nil {
		return nil, err
	}

	c.scheduleCache.Set(key, resp.Games, gocache.DefaultExpiration)
	return resp.Games, nil
}
