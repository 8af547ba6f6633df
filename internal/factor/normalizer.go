package factor

import (
	"github.com/yourusername/puckcast/internal/logger"
	"github.com/yourusername/puckcast/internal/models"
)

// Native-unit rescale constants. Each maps a factor's typical spread
// onto the shared differential scale: a .010 save-percentage edge is
// worth a 0.10 differential, special-teams percentages spread across a
// fifth of the win-rate range, head-to-head win rate is re-centered on
// 0.5, and shot volume differences span roughly 15 shots per game.
const (
	goalieScale       = 10.0
	specialTeamsScale = 5.0
	headToHeadScale   = 2.0
	shotsSpread       = 15.0
)

// GameInputs carries the raw stats the adapter collected for one game.
// A nil group means the corresponding signal could not be fetched; the
// factors derived from it become Absent, never zero.
type GameInputs struct {
	HomeStandings *models.StandingsRow
	AwayStandings *models.StandingsRow
	HomeSummary   *models.TeamSummary
	AwaySummary   *models.TeamSummary
	HeadToHead    *models.HeadToHead
	Goalies       *models.GoaliePair
	HomeInjury    float64
	AwayInjury    float64
}

// Normalizer converts raw home/away stat pairs into the per-factor
// differential set.
type Normalizer struct {
	homeIceCredit float64
	plog          *logger.PredictionLogger
}

// NewNormalizer creates a normalizer. homeIceCredit is the constant
// differential credited to the home side independent of stats.
func NewNormalizer(homeIceCredit float64, plog *logger.PredictionLogger) *Normalizer {
	return &Normalizer{homeIceCredit: homeIceCredit, plog: plog}
}

// Normalize produces the differential slots for one game. Six core
// slots are always present (falling back to a neutral 0 on degenerate
// sample windows); goalie and head-to-head are Absent when their data
// is not there. Malformed values are clamped into their sane domain
// and logged, never fatal.
func (n *Normalizer) Normalize(game *models.Game, in *GameInputs) *Set {
	set := NewSet()

	set.Put(HomeIce, Present(Clamp(n.homeIceCredit)))
	n.normalizeRecords(game, in, set)
	n.normalizeSummaries(game, in, set)
	n.normalizeHeadToHead(game, in, set)
	n.normalizeGoalies(game, in, set)
	set.Put(Injury, Present(Clamp(n.sanePct(game, Injury, in.AwayInjury)-n.sanePct(game, Injury, in.HomeInjury))))

	return set
}

func (n *Normalizer) normalizeRecords(game *models.Game, in *GameInputs, set *Set) {
	if in.HomeStandings == nil || in.AwayStandings == nil {
		n.absent(game, Last10, set, "standings unavailable")
		n.absent(game, SeasonRecord, set, "standings unavailable")
		return
	}
	// Zero games played inside a window degrades to the neutral 0.5
	// win rate, so the differential collapses to 0 rather than erroring.
	set.Put(Last10, Present(Clamp(in.HomeStandings.L10WinPct()-in.AwayStandings.L10WinPct())))
	set.Put(SeasonRecord, Present(Clamp(in.HomeStandings.SeasonWinPct()-in.AwayStandings.SeasonWinPct())))
}

func (n *Normalizer) normalizeSummaries(game *models.Game, in *GameInputs, set *Set) {
	if in.HomeSummary == nil || in.AwaySummary == nil {
		n.absent(game, SpecialTeams, set, "team summary unavailable")
		n.absent(game, Shots, set, "team summary unavailable")
		n.absent(game, GoalDiff, set, "team summary unavailable")
		return
	}

	homeSpecial := (n.sanePct(game, SpecialTeams, in.HomeSummary.PowerPlayPct) + n.sanePct(game, SpecialTeams, in.HomeSummary.PenaltyKillPct)) / 2.0
	awaySpecial := (n.sanePct(game, SpecialTeams, in.AwaySummary.PowerPlayPct) + n.sanePct(game, SpecialTeams, in.AwaySummary.PenaltyKillPct)) / 2.0
	set.Put(SpecialTeams, Present(Clamp((homeSpecial-awaySpecial)*specialTeamsScale)))

	if in.HomeSummary.ShotsForPerGame <= 0 || in.AwaySummary.ShotsForPerGame <= 0 {
		n.absent(game, Shots, set, "shot volume out of domain")
	} else {
		set.Put(Shots, Present(Clamp((in.HomeSummary.ShotsForPerGame-in.AwaySummary.ShotsForPerGame)/shotsSpread)))
	}

	set.Put(GoalDiff, Present(Clamp(in.HomeSummary.GoalDiffPerGame()-in.AwaySummary.GoalDiffPerGame())))
}

func (n *Normalizer) normalizeHeadToHead(game *models.Game, in *GameInputs, set *Set) {
	// No meetings yet is an absent factor, not a zero differential.
	if in.HeadToHead == nil || in.HeadToHead.Games <= 0 {
		n.absent(game, HeadToHead, set, "no completed meetings this season")
		return
	}
	set.Put(HeadToHead, Present(Clamp((in.HeadToHead.HomeWinPct()-0.5)*headToHeadScale)))
}

func (n *Normalizer) normalizeGoalies(game *models.Game, in *GameInputs, set *Set) {
	// All-or-nothing: the factor needs both confirmed starters.
	if in.Goalies == nil {
		n.absent(game, Goalie, set, "starting goalies unresolved")
		return
	}
	if !validSavePct(in.Goalies.HomeSavePct) || !validSavePct(in.Goalies.AwaySavePct) {
		if n.plog != nil {
			n.plog.LogMalformedStat(game.ID, string(Goalie), in.Goalies.HomeSavePct)
		}
		n.absent(game, Goalie, set, "save percentage out of domain")
		return
	}
	set.Put(Goalie, Present(Clamp((in.Goalies.HomeSavePct-in.Goalies.AwaySavePct)*goalieScale)))
}

func (n *Normalizer) absent(game *models.Game, id ID, set *Set, reason string) {
	set.Put(id, Absent())
	if n.plog != nil {
		n.plog.LogFactorAbsent(game.ID, game.Matchup(), string(id), reason)
	}
}

// sanePct clamps a rate into [0, 1], logging when the input was out of
// domain.
func (n *Normalizer) sanePct(game *models.Game, id ID, v float64) float64 {
	if v < 0 || v > 1 {
		if n.plog != nil {
			n.plog.LogMalformedStat(game.ID, string(id), v)
		}
		if v < 0 {
			return 0
		}
		return 1
	}
	return v
}

func validSavePct(v float64) bool {
	return v > 0 && v <= 1
}
