// Package service orchestrates the per-date prediction pipeline: fetch
// the slate of games, gather each game's raw signals, score them and
// assemble the output records.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/puckcast/internal/factor"
	"github.com/yourusername/puckcast/internal/injury"
	"github.com/yourusername/puckcast/internal/logger"
	"github.com/yourusername/puckcast/internal/metrics"
	"github.com/yourusername/puckcast/internal/models"
	"github.com/yourusername/puckcast/internal/nhl"
	"github.com/yourusername/puckcast/internal/predictor"
	"github.com/yourusername/puckcast/internal/repository"
	"github.com/yourusername/puckcast/internal/storage"
)

// maxConcurrentGames bounds the per-game fan-out; each game still does
// its own head-to-head and goalie fetches.
const maxConcurrentGames = 4

// StatProvider is the stat adapter surface the slate service consumes.
type StatProvider interface {
	FetchSchedule(ctx context.Context, date time.Time) ([]models.Game, error)
	FetchStandings(ctx context.Context) (*nhl.Standings, error)
	FetchTeamSummaries(ctx context.Context, seasonID int64, nameToAbbrev map[string]string) (map[string]models.TeamSummary, error)
	FetchHeadToHead(ctx context.Context, homeAbbrev, awayAbbrev string, seasonID int64) (*models.HeadToHead, error)
}

// GoalieSource resolves confirmed starters for a game.
type GoalieSource interface {
	Resolve(ctx context.Context, date string, game *models.Game) (*models.GoaliePair, error)
}

// SlateService runs predictions for every scheduled game on a date.
type SlateService struct {
	stats   StatProvider
	goalies GoalieSource
	model   *predictor.Model
	store   *storage.Store
	repo    repository.PredictionRepository // nil when persistence is file-only
	log     *logrus.Logger
	plog    *logger.PredictionLogger
}

// NewSlateService creates the orchestrator. repo may be nil.
func NewSlateService(
	stats StatProvider,
	goalies GoalieSource,
	model *predictor.Model,
	store *storage.Store,
	repo repository.PredictionRepository,
	log *logrus.Logger,
) *SlateService {
	return &SlateService{
		stats:   stats,
		goalies: goalies,
		model:   model,
		store:   store,
		repo:    repo,
		log:     log,
		plog:    logger.NewPredictionLogger(log),
	}
}

// PredictDate produces the slate for a date. Schedule failure is fatal
// for the run; any other upstream failure only degrades the factors it
// feeds. Output order matches schedule order regardless of per-game
// fan-out.
func (s *SlateService) PredictDate(ctx context.Context, date time.Time) (*models.Slate, error) {
	started := time.Now()
	dateStr := date.Format("2006-01-02")
	slate := models.NewSlate(dateStr)

	games, err := s.stats.FetchSchedule(ctx, date)
	if err != nil {
		metrics.RecordSlateFailure()
		return nil, fmt.Errorf("cannot predict %s: %w", dateStr, err)
	}
	if len(games) == 0 {
		slate.Message = "No upcoming games for this date."
		s.log.WithField("date", dateStr).Info("No games scheduled")
		return slate, nil
	}

	// League-wide snapshots are shared by every game. Their failure
	// degrades the derived factors to absent rather than killing the run.
	standings, err := s.stats.FetchStandings(ctx)
	if err != nil {
		s.log.WithError(err).Warn("Standings unavailable, record factors will be excluded")
		standings = nil
	}

	var summaries map[string]models.TeamSummary
	seasonID := nhl.CurrentSeasonID(date)
	if standings != nil {
		summaries, err = s.stats.FetchTeamSummaries(ctx, seasonID, standings.NameToAbbrev)
		if err != nil {
			s.log.WithError(err).Warn("Team summaries unavailable, special-teams and shot factors will be excluded")
			summaries = nil
		}
	}

	injuries, err := injury.LoadSheet(s.store.InjuriesPath())
	if err != nil {
		s.log.WithError(err).Warn("Injury sheet unreadable, ignoring")
		injuries = injury.Sheet{}
	}

	records := make([]models.PredictionRecord, len(games))
	sem := make(chan struct{}, maxConcurrentGames)
	var wg sync.WaitGroup

	for i := range games {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			records[i] = s.predictGame(ctx, dateStr, &games[i], standings, summaries, injuries, seasonID)
		}(i)
	}
	wg.Wait()

	slate.Games = records
	metrics.RecordSlateRun(len(records), time.Since(started).Seconds())
	s.plog.LogSlateCompleted(dateStr, len(records), float64(time.Since(started).Milliseconds()))
	return slate, nil
}

// predictGame gathers one game's inputs and scores it. Every signal
// that cannot be gathered leaves its factor absent.
func (s *SlateService) predictGame(
	ctx context.Context,
	dateStr string,
	game *models.Game,
	standings *nhl.Standings,
	summaries map[string]models.TeamSummary,
	injuries injury.Sheet,
	seasonID int64,
) models.PredictionRecord {
	in := &factor.GameInputs{
		HomeInjury: injuries.TeamSeverity(dateStr, game.HomeAbbrev),
		AwayInjury: injuries.TeamSeverity(dateStr, game.AwayAbbrev),
	}

	if standings != nil {
		if row, err := standings.Row(game.HomeAbbrev); err == nil {
			in.HomeStandings = row
		}
		if row, err := standings.Row(game.AwayAbbrev); err == nil {
			in.AwayStandings = row
		}
	}
	if summaries != nil {
		if sum, ok := summaries[game.HomeAbbrev]; ok {
			in.HomeSummary = &sum
		}
		if sum, ok := summaries[game.AwayAbbrev]; ok {
			in.AwaySummary = &sum
		}
	}

	h2h, err := s.stats.FetchHeadToHead(ctx, game.HomeAbbrev, game.AwayAbbrev, seasonID)
	if err != nil {
		s.plog.LogFactorAbsent(game.ID, game.Matchup(), string(factor.HeadToHead), "club schedule fetch failed")
		metrics.RecordFactorAbsence(string(factor.HeadToHead))
	} else {
		in.HeadToHead = h2h
	}

	pair, err := s.goalies.Resolve(ctx, dateStr, game)
	if err != nil {
		s.plog.LogFactorAbsent(game.ID, game.Matchup(), string(factor.Goalie), err.Error())
		metrics.RecordFactorAbsence(string(factor.Goalie))
	} else {
		in.Goalies = pair
	}

	record := s.model.Predict(game, in)
	metrics.RecordPrediction()
	s.log.WithField("game_id", game.ID).Debug(record.String())
	return record
}

// PersistSlate writes the slate to the predictions file and, when a
// repository is configured, to Postgres. Returns the file path.
func (s *SlateService) PersistSlate(ctx context.Context, slate *models.Slate) (string, error) {
	path, err := s.store.WriteSlate(slate)
	if err != nil {
		return "", err
	}

	if s.repo != nil {
		if err := s.repo.SaveSlate(ctx, slate); err != nil {
			return path, fmt.Errorf("slate written to %s but database persistence failed: %w", path, err)
		}
	}
	return path, nil
}
