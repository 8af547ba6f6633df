package goalie

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/puckcast/internal/models"
)

type fakePlayerAPI struct {
	savePcts  map[int64]float64
	playerIDs map[string]int64
	searchErr error
}

func (f *fakePlayerAPI) FetchGoalieSavePct(_ context.Context, playerID int64) (float64, error) {
	sv, ok := f.savePcts[playerID]
	if !ok {
		return 0, models.ErrNotFound
	}
	return sv, nil
}

func (f *fakePlayerAPI) SearchPlayerID(_ context.Context, name string) (int64, error) {
	if f.searchErr != nil {
		return 0, f.searchErr
	}
	id, ok := f.playerIDs[name]
	if !ok {
		return 0, models.ErrNotFound
	}
	return id, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func torBosGame() *models.Game {
	return &models.Game{ID: 2025020700, Date: "2026-01-15", HomeAbbrev: "TOR", AwayAbbrev: "BOS"}
}

func TestResolveByExplicitIDs(t *testing.T) {
	api := &fakePlayerAPI{savePcts: map[int64]float64{8479361: 0.915, 8480280: 0.905}}
	sheet := Sheet{
		"2026-01-15": {{GameID: 2025020700, HomeGoalieID: 8479361, AwayGoalieID: 8480280}},
	}

	pair, err := NewResolver(api, sheet, testLogger()).Resolve(context.Background(), "2026-01-15", torBosGame())
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.InDelta(t, 0.915, pair.HomeSavePct, 1e-9)
	assert.InDelta(t, 0.905, pair.AwaySavePct, 1e-9)
}

func TestResolveByNameSearch(t *testing.T) {
	api := &fakePlayerAPI{
		savePcts:  map[int64]float64{8479361: 0.915, 8480280: 0.905},
		playerIDs: map[string]int64{"Joseph Woll": 8479361, "Jeremy Swayman": 8480280},
	}
	sheet := Sheet{
		"2026-01-15": {{
			HomeAbbrev: "TOR", AwayAbbrev: "BOS",
			HomeGoalieName: "Joseph Woll", AwayGoalieName: "Jeremy Swayman",
		}},
	}

	pair, err := NewResolver(api, sheet, testLogger()).Resolve(context.Background(), "2026-01-15", torBosGame())
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.InDelta(t, 0.915, pair.HomeSavePct, 1e-9)
}

func TestResolveNoSheetEntry(t *testing.T) {
	resolver := NewResolver(&fakePlayerAPI{}, Sheet{}, testLogger())

	pair, err := resolver.Resolve(context.Background(), "2026-01-15", torBosGame())
	assert.NoError(t, err)
	assert.Nil(t, pair)
}

func TestResolveSearchFailure(t *testing.T) {
	api := &fakePlayerAPI{searchErr: errors.New("search down")}
	sheet := Sheet{
		"2026-01-15": {{HomeAbbrev: "TOR", AwayAbbrev: "BOS", HomeGoalieName: "Joseph Woll", AwayGoalieName: "Jeremy Swayman"}},
	}

	_, err := NewResolver(api, sheet, testLogger()).Resolve(context.Background(), "2026-01-15", torBosGame())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrGoalieUnresolved))
}

func TestResolveEntryWithoutIDOrName(t *testing.T) {
	sheet := Sheet{
		"2026-01-15": {{HomeAbbrev: "TOR", AwayAbbrev: "BOS", AwayGoalieName: "Jeremy Swayman"}},
	}

	_, err := NewResolver(&fakePlayerAPI{}, sheet, testLogger()).Resolve(context.Background(), "2026-01-15", torBosGame())
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrGoalieUnresolved))
}

func TestLoadSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "starting_goalies.json")
	content := `{
		"2026-01-15": [
			{"gameId": 2025020700, "homeGoalieId": 8479361, "awayGoalieName": "Jeremy Swayman"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sheet, err := LoadSheet(path)
	require.NoError(t, err)
	require.Len(t, sheet["2026-01-15"], 1)
	assert.Equal(t, int64(8479361), sheet["2026-01-15"][0].HomeGoalieID)
	assert.Equal(t, "Jeremy Swayman", sheet["2026-01-15"][0].AwayGoalieName)
}

func TestLoadSheetMissingFile(t *testing.T) {
	sheet, err := LoadSheet(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, sheet)
}

func TestLoadSheetMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := LoadSheet(path)
	assert.Error(t, err)
}

func TestReloadSheetPicksUpNewStarters(t *testing.T) {
	api := &fakePlayerAPI{savePcts: map[int64]float64{8479361: 0.915, 8480280: 0.905}}
	resolver := NewResolver(api, Sheet{}, testLogger())
	path := filepath.Join(t.TempDir(), "starting_goalies.json")

	// Nothing on the sheet yet
	pair, err := resolver.Resolve(context.Background(), "2026-01-15", torBosGame())
	require.NoError(t, err)
	assert.Nil(t, pair)

	// Starters published after the resolver was built
	content := `{
		"2026-01-15": [
			{"gameId": 2025020700, "homeGoalieId": 8479361, "awayGoalieId": 8480280}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, resolver.ReloadSheet(path))

	pair, err = resolver.Resolve(context.Background(), "2026-01-15", torBosGame())
	require.NoError(t, err)
	require.NotNil(t, pair)
	assert.InDelta(t, 0.915, pair.HomeSavePct, 1e-9)
}

func TestReloadSheetMalformedKeepsExisting(t *testing.T) {
	api := &fakePlayerAPI{savePcts: map[int64]float64{8479361: 0.915, 8480280: 0.905}}
	sheet := Sheet{
		"2026-01-15": {{GameID: 2025020700, HomeGoalieID: 8479361, AwayGoalieID: 8480280}},
	}
	resolver := NewResolver(api, sheet, testLogger())

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	require.Error(t, resolver.ReloadSheet(path))

	pair, err := resolver.Resolve(context.Background(), "2026-01-15", torBosGame())
	require.NoError(t, err)
	require.NotNil(t, pair)
}
