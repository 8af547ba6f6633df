package nhl

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/puckcast/internal/models"
)

type scheduleResponse struct {
	GameWeek []scheduleWeek `json:"gameWeek"`
}

type scheduleWeek struct {
	Date  string          `json:"date"`
	Games []scheduleEntry `json:"games"`
}

type scheduleEntry struct {
	ID           int64         `json:"id"`
	GameState    string        `json:"gameState"`
	StartTimeUTC string        `json:"startTimeUTC"`
	HomeTeam     scheduleClub  `json:"homeTeam"`
	AwayTeam     scheduleClub  `json:"awayTeam"`
}

type scheduleClub struct {
	ID     int64        `json:"id"`
	Abbrev string       `json:"abbrev"`
	// some payloads nest the abbreviation
	TeamAbbrev *localized `json:"teamAbbrev"`
	Score      *int       `json:"score"`
}

type localized struct {
	Default string `json:"default"`
}

func (c *scheduleClub) abbrev() string {
	if c.Abbrev != "" {
		return c.Abbrev
	}
	if c.TeamAbbrev != nil {
		return c.TeamAbbrev.Default
	}
	return ""
}

// FetchSchedule returns the games scheduled for the given date that
// have not yet started, in schedule order.
func (c *Client) FetchSchedule(ctx context.Context, date time.Time) ([]models.Game, error) {
	dateStr := date.Format("2006-01-02")
	url := fmt.Sprintf("%s/schedule/%s", c.webBaseURL, dateStr)

	var resp scheduleResponse
	if err := c.getJSON(ctx, "schedule", url, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrScheduleUnavailable, err)
	}

	var games []models.Game
	for _, week := range resp.GameWeek {
		if week.Date != dateStr {
			continue
		}
		for _, g := range week.Games {
			if !models.IsPredictable(g.GameState) {
				continue
			}
			start, _ := time.Parse(time.RFC3339, g.StartTimeUTC)
			games = append(games, models.Game{
				ID:           g.ID,
				Date:         week.Date,
				HomeAbbrev:   g.HomeTeam.abbrev(),
				AwayAbbrev:   g.AwayTeam.abbrev(),
				HomeID:       g.HomeTeam.ID,
				AwayID:       g.AwayTeam.ID,
				StartTimeUTC: start,
			})
		}
	}
	return games, nil
}
