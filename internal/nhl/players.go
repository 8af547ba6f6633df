package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

type playerLandingResponse struct {
	FeaturedStats struct {
		RegularSeason struct {
			SubSeason struct {
				SavePctg *float64 `json:"savePctg"`
			} `json:"subSeason"`
		} `json:"regularSeason"`
	} `json:"featuredStats"`
}

// FetchGoalieSavePct returns the current-season save percentage for a
// goalie by player ID. ErrNotFound when the player has no featured
// save percentage.
func (c *Client) FetchGoalieSavePct(ctx context.Context, playerID int64) (float64, error) {
	u := fmt.Sprintf("%s/player/%d/landing", c.webBaseURL, playerID)

	var resp playerLandingResponse
	if err := c.getJSON(ctx, "player_landing", u, &resp); err != nil {
		return 0, err
	}

	sv := resp.FeaturedStats.RegularSeason.SubSeason.SavePctg
	if sv == nil {
		return 0, NewAPIError("player_landing", ErrCodeNotFound, fmt.Sprintf("no save percentage for player %d", playerID), ErrNotFound)
	}
	return *sv, nil
}

type searchHit struct {
	PlayerID json.Number `json:"playerId"`
	Position string      `json:"position"`
}

// SearchPlayerID resolves a player name to an NHL player ID, preferring
// goalies among the top matches. ErrNotFound when nothing matches.
func (c *Client) SearchPlayerID(ctx context.Context, name string) (int64, error) {
	u := fmt.Sprintf("%s?culture=en-us&limit=5&q=%s", c.searchBaseURL, url.QueryEscape(name))

	// The search API returns either a bare list or {"data": [...]}
	var raw json.RawMessage
	if err := c.getJSON(ctx, "player_search", u, &raw); err != nil {
		return 0, err
	}

	var hits []searchHit
	if err := json.Unmarshal(raw, &hits); err != nil {
		var wrapped struct {
			Data []searchHit `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return 0, NewAPIError("player_search", ErrCodeInvalidData, "unrecognized search response shape", err)
		}
		hits = wrapped.Data
	}

	// Prefer goalies among the top matches
	for i, hit := range hits {
		if i >= 3 {
			break
		}
		if hit.Position == "G" {
			if id, err := hit.PlayerID.Int64(); err == nil && id != 0 {
				return id, nil
			}
		}
	}
	for _, hit := range hits {
		if id, err := hit.PlayerID.Int64(); err == nil && id != 0 {
			return id, nil
		}
	}
	return 0, NewAPIError("player_search", ErrCodeNotFound, fmt.Sprintf("no player matching %q", name), ErrNotFound)
}
