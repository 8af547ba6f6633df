// Package goalie resolves confirmed starting goalies to their season
// save percentages. Resolution is two-step: an explicit player ID wins;
// otherwise the name is looked up through the search API, then the ID
// through the player stats API. Any gap leaves the goalie factor
// absent, never an error for the game.
package goalie

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/puckcast/internal/models"
)

// PlayerAPI is the subset of the stat adapter the resolver needs.
type PlayerAPI interface {
	FetchGoalieSavePct(ctx context.Context, playerID int64) (float64, error)
	SearchPlayerID(ctx context.Context, name string) (int64, error)
}

// Sheet is the starting-goalies input keyed by ISO date.
type Sheet map[string][]models.StartingGoalieEntry

// LoadSheet reads the starting-goalies file. A missing file is an empty
// sheet, not an error; no confirmed starters just means the goalie
// factor stays absent.
func LoadSheet(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Sheet{}, nil
		}
		return nil, fmt.Errorf("failed to read starting goalies file: %w", err)
	}

	var sheet Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse starting goalies file: %w", err)
	}
	return sheet, nil
}

// Resolver resolves per-game starting goalie save percentages.
type Resolver struct {
	api PlayerAPI
	log *logrus.Logger

	// mu guards the sheet; Resolve runs on the slate worker goroutines
	// while the daemon swaps the sheet in between runs
	mu    sync.RWMutex
	sheet Sheet
}

// NewResolver creates a resolver over a loaded sheet.
func NewResolver(api PlayerAPI, sheet Sheet, log *logrus.Logger) *Resolver {
	return &Resolver{api: api, sheet: sheet, log: log}
}

// ReloadSheet re-reads the starting-goalies file and swaps in the fresh
// sheet, so starters published while the daemon is running are picked up
// on the next slate.
func (r *Resolver) ReloadSheet(path string) error {
	sheet, err := LoadSheet(path)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.sheet = sheet
	r.mu.Unlock()
	return nil
}

// Resolve returns both starters' save percentages for a game, or
// (nil, nil) when the sheet has no entry for it. An error means an
// entry existed but could not be fully resolved; callers treat that
// the same as no entry.
func (r *Resolver) Resolve(ctx context.Context, date string, game *models.Game) (*models.GoaliePair, error) {
	entry := r.findEntry(date, game)
	if entry == nil {
		return nil, nil
	}

	homeID, err := r.resolveID(ctx, entry.HomeGoalieID, entry.HomeGoalieName)
	if err != nil {
		return nil, fmt.Errorf("home goalie: %w", err)
	}
	awayID, err := r.resolveID(ctx, entry.AwayGoalieID, entry.AwayGoalieName)
	if err != nil {
		return nil, fmt.Errorf("away goalie: %w", err)
	}

	homeSv, err := r.api.FetchGoalieSavePct(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("home goalie save pct: %w", err)
	}
	awaySv, err := r.api.FetchGoalieSavePct(ctx, awayID)
	if err != nil {
		return nil, fmt.Errorf("away goalie save pct: %w", err)
	}

	return &models.GoaliePair{HomeSavePct: homeSv, AwaySavePct: awaySv}, nil
}

// findEntry matches by game ID first, then by abbreviation pair.
func (r *Resolver) findEntry(date string, game *models.Game) *models.StartingGoalieEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.sheet[date] {
		if r.sheet[date][i].MatchesGame(game) {
			return &r.sheet[date][i]
		}
	}
	return nil
}

func (r *Resolver) resolveID(ctx context.Context, id int64, name string) (int64, error) {
	if id != 0 {
		return id, nil
	}
	if name == "" {
		return 0, fmt.Errorf("%w: no ID or name on sheet", models.ErrGoalieUnresolved)
	}
	resolved, err := r.api.SearchPlayerID(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("%w: search for %q failed: %v", models.ErrGoalieUnresolved, name, err)
	}
	r.log.WithFields(logrus.Fields{"name": name, "player_id": resolved}).Debug("Resolved goalie name to player ID")
	return resolved, nil
}
