package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/puckcast/internal/config"
	"github.com/yourusername/puckcast/internal/models"
	"github.com/yourusername/puckcast/internal/nhl"
	"github.com/yourusername/puckcast/internal/predictor"
	"github.com/yourusername/puckcast/internal/storage"
)

type fakeStats struct {
	games        []models.Game
	scheduleErr  error
	standings    *nhl.Standings
	standingsErr error
	summaries    map[string]models.TeamSummary
	summariesErr error
	h2h          map[string]*models.HeadToHead
}

func (f *fakeStats) FetchSchedule(_ context.Context, _ time.Time) ([]models.Game, error) {
	return f.games, f.scheduleErr
}

func (f *fakeStats) FetchStandings(_ context.Context) (*nhl.Standings, error) {
	return f.standings, f.standingsErr
}

func (f *fakeStats) FetchTeamSummaries(_ context.Context, _ int64, _ map[string]string) (map[string]models.TeamSummary, error) {
	return f.summaries, f.summariesErr
}

func (f *fakeStats) FetchHeadToHead(_ context.Context, home, away string, _ int64) (*models.HeadToHead, error) {
	if h, ok := f.h2h[home+"/"+away]; ok {
		return h, nil
	}
	return &models.HeadToHead{}, nil
}

type fakeGoalies struct {
	pairs map[int64]*models.GoaliePair
	err   error
}

func (f *fakeGoalies) Resolve(_ context.Context, _ string, game *models.Game) (*models.GoaliePair, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.pairs[game.ID], nil
}

func testModel() *predictor.Model {
	return predictor.NewModel(config.ModelConfig{
		Weights: config.WeightsConfig{
			HomeIce:      0.045,
			Last10:       0.222,
			SeasonRecord: 0.267,
			Goalie:       0.133,
			SpecialTeams: 0.067,
			HeadToHead:   0.178,
			Shots:        0.088,
		},
		HomeIceCredit: 1.0,
		Sensitivity:   2.0,
	}, nil)
}

func testService(t *testing.T, stats *fakeStats, goalies *fakeGoalies) *SlateService {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	store := storage.NewStore(config.DataConfig{
		Dir:                 filepath.Join(t.TempDir(), "nhl_data"),
		StartingGoaliesFile: "starting_goalies.json",
		InjuriesFile:        "injuries.json",
		PredictionsFile:     "predictions.json",
	}, log)
	return NewSlateService(stats, goalies, testModel(), store, nil, log)
}

func standingsFixture() *nhl.Standings {
	rows := []models.StandingsRow{
		{Abbrev: "TOR", TeamName: "Toronto Maple Leafs", Wins: 30, OTLosses: 4, GamesPlayed: 50, L10Wins: 7, L10OTLosses: 1, L10GamesPlayed: 10},
		{Abbrev: "BOS", TeamName: "Boston Bruins", Wins: 25, OTLosses: 5, GamesPlayed: 50, L10Wins: 5, L10GamesPlayed: 10},
		{Abbrev: "MTL", TeamName: "Montreal Canadiens", Wins: 20, OTLosses: 6, GamesPlayed: 50, L10Wins: 4, L10GamesPlayed: 10},
		{Abbrev: "OTT", TeamName: "Ottawa Senators", Wins: 27, OTLosses: 3, GamesPlayed: 50, L10Wins: 6, L10GamesPlayed: 10},
	}
	s := &nhl.Standings{ByAbbrev: map[string]models.StandingsRow{}, NameToAbbrev: map[string]string{}}
	for _, r := range rows {
		s.ByAbbrev[r.Abbrev] = r
		s.NameToAbbrev[r.TeamName] = r.Abbrev
	}
	return s
}

func scheduleFixture() []models.Game {
	return []models.Game{
		{ID: 2025020700, Date: "2026-01-15", HomeAbbrev: "TOR", AwayAbbrev: "BOS"},
		{ID: 2025020701, Date: "2026-01-15", HomeAbbrev: "MTL", AwayAbbrev: "OTT"},
	}
}

func TestPredictDateFullSlate(t *testing.T) {
	stats := &fakeStats{
		games:     scheduleFixture(),
		standings: standingsFixture(),
		summaries: map[string]models.TeamSummary{
			"TOR": {Abbrev: "TOR", PowerPlayPct: 0.25, PenaltyKillPct: 0.82, ShotsForPerGame: 32, GoalsForPerGame: 3.4, GoalsAgainstPerGame: 2.9},
			"BOS": {Abbrev: "BOS", PowerPlayPct: 0.21, PenaltyKillPct: 0.80, ShotsForPerGame: 29, GoalsForPerGame: 3.0, GoalsAgainstPerGame: 3.1},
			"MTL": {Abbrev: "MTL", PowerPlayPct: 0.18, PenaltyKillPct: 0.78, ShotsForPerGame: 28, GoalsForPerGame: 2.8, GoalsAgainstPerGame: 3.2},
			"OTT": {Abbrev: "OTT", PowerPlayPct: 0.22, PenaltyKillPct: 0.81, ShotsForPerGame: 31, GoalsForPerGame: 3.2, GoalsAgainstPerGame: 3.0},
		},
		h2h: map[string]*models.HeadToHead{
			"TOR/BOS": {HomeWins: 2, Games: 3},
		},
	}
	goalies := &fakeGoalies{pairs: map[int64]*models.GoaliePair{
		2025020700: {HomeSavePct: 0.915, AwaySavePct: 0.905},
	}}

	svc := testService(t, stats, goalies)
	slate, err := svc.PredictDate(context.Background(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, slate.Games, 2)
	// Output follows schedule order whatever order the workers finish in.
	assert.Equal(t, int64(2025020700), slate.Games[0].GameID)
	assert.Equal(t, int64(2025020701), slate.Games[1].GameID)

	tor := slate.Games[0]
	assert.Equal(t, "TOR", tor.HomeTeam)
	assert.Equal(t, "BOS", tor.AwayTeam)
	assert.Greater(t, tor.HomeWinProb, 0.5, "TOR leads every factor at home")
	assert.Negative(t, tor.HomeAmericanOdds)
	assert.Positive(t, tor.AwayAmericanOdds)
	assert.Equal(t, "2026-01-15", tor.Date)
}

func TestPredictDateScheduleFailureIsFatal(t *testing.T) {
	stats := &fakeStats{scheduleErr: models.ErrScheduleUnavailable}
	svc := testService(t, stats, &fakeGoalies{})

	_, err := svc.PredictDate(context.Background(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrScheduleUnavailable))
}

func TestPredictDateEmptySchedule(t *testing.T) {
	svc := testService(t, &fakeStats{}, &fakeGoalies{})

	slate, err := svc.PredictDate(context.Background(), time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, slate.Games)
	assert.NotEmpty(t, slate.Message)
}

func TestPredictDateDegradedUpstream(t *testing.T) {
	// Standings and summaries down, goalies unresolved: every game must
	// still produce a record from home ice alone.
	stats := &fakeStats{
		games:        scheduleFixture(),
		standingsErr: errors.New("standings down"),
	}
	goalies := &fakeGoalies{err: models.ErrGoalieUnresolved}

	svc := testService(t, stats, goalies)
	slate, err := svc.PredictDate(context.Background(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Len(t, slate.Games, 2)
	for _, rec := range slate.Games {
		assert.Greater(t, rec.HomeWinProb, 0.5)
		assert.Less(t, rec.HomeWinProb, 1.0)
	}
}

func TestPersistSlate(t *testing.T) {
	svc := testService(t, &fakeStats{}, &fakeGoalies{})

	slate := models.NewSlate("2026-01-15")
	slate.Games = []models.PredictionRecord{{
		GameID: 2025020700, Date: "2026-01-15",
		HomeTeam: "TOR", AwayTeam: "BOS",
		HomeWinProb: 0.6, HomeAmericanOdds: -150, AwayAmericanOdds: 150,
	}}

	path, err := svc.PersistSlate(context.Background(), slate)
	require.NoError(t, err)
	assert.Equal(t, "predictions.json", filepath.Base(path))

	got, err := svc.store.ReadSlate()
	require.NoError(t, err)
	assert.Equal(t, slate.RunID, got.RunID)
}
