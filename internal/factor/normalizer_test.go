package factor

import (
	"math"
	"testing"

	"github.com/yourusername/puckcast/internal/models"
)

const tolerance = 1e-9

func testGame() *models.Game {
	return &models.Game{ID: 2024020500, Date: "2026-01-15", HomeAbbrev: "TOR", AwayAbbrev: "BOS"}
}

func fullInputs() *GameInputs {
	return &GameInputs{
		HomeStandings: &models.StandingsRow{
			Abbrev: "TOR", Wins: 30, OTLosses: 4, GamesPlayed: 50,
			L10Wins: 7, L10OTLosses: 1, L10GamesPlayed: 10,
		},
		AwayStandings: &models.StandingsRow{
			Abbrev: "BOS", Wins: 25, OTLosses: 5, GamesPlayed: 50,
			L10Wins: 5, L10OTLosses: 0, L10GamesPlayed: 10,
		},
		HomeSummary: &models.TeamSummary{
			Abbrev: "TOR", PowerPlayPct: 0.25, PenaltyKillPct: 0.82,
			ShotsForPerGame: 32.0, GoalsForPerGame: 3.4, GoalsAgainstPerGame: 2.9,
		},
		AwaySummary: &models.TeamSummary{
			Abbrev: "BOS", PowerPlayPct: 0.21, PenaltyKillPct: 0.80,
			ShotsForPerGame: 29.0, GoalsForPerGame: 3.0, GoalsAgainstPerGame: 3.1,
		},
		HeadToHead: &models.HeadToHead{HomeWins: 2, Games: 3},
		Goalies:    &models.GoaliePair{HomeSavePct: 0.915, AwaySavePct: 0.905},
	}
}

func TestNormalizeFullInputs(t *testing.T) {
	n := NewNormalizer(1.0, nil)
	set := n.Normalize(testGame(), fullInputs())

	checks := []struct {
		id   ID
		want float64
	}{
		{HomeIce, 1.0},
		// (7.5/10) - (5/10)
		{Last10, 0.25},
		// (32/50) - (27.5/50)
		{SeasonRecord, 0.09},
		// (0.915 - 0.905) * 10
		{Goalie, 0.1},
		// (0.535 - 0.505) * 5
		{SpecialTeams, 0.15},
		// (2/3 - 0.5) * 2
		{HeadToHead, 1.0 / 3.0},
		// (32 - 29) / 15
		{Shots, 0.2},
		// (3.4-2.9) - (3.0-3.1)
		{GoalDiff, 0.6},
	}
	for _, c := range checks {
		v, ok := set.Get(c.id).Value()
		if !ok {
			t.Fatalf("%s: expected present factor", c.id)
		}
		if math.Abs(v-c.want) > tolerance {
			t.Errorf("%s = %v, want %v", c.id, v, c.want)
		}
	}
}

func TestNormalizeClampsExtremeDifferentials(t *testing.T) {
	in := fullInputs()
	in.HomeSummary.ShotsForPerGame = 60.0
	in.AwaySummary.ShotsForPerGame = 20.0

	n := NewNormalizer(1.0, nil)
	set := n.Normalize(testGame(), in)

	if v, _ := set.Get(Shots).Value(); v != 1.0 {
		t.Errorf("expected shots differential clamped to 1.0, got %v", v)
	}
}

func TestNormalizeMissingStandings(t *testing.T) {
	in := fullInputs()
	in.AwayStandings = nil

	n := NewNormalizer(1.0, nil)
	set := n.Normalize(testGame(), in)

	for _, id := range []ID{Last10, SeasonRecord} {
		if set.Get(id).IsPresent() {
			t.Errorf("%s: expected absent when standings are missing", id)
		}
	}
	// The remaining factors still compute.
	if set.PresentCount() != 7 {
		t.Errorf("expected 7 present factors, got %d", set.PresentCount())
	}
}

func TestNormalizeNoHeadToHeadMeetings(t *testing.T) {
	in := fullInputs()
	in.HeadToHead = &models.HeadToHead{HomeWins: 0, Games: 0}

	n := NewNormalizer(1.0, nil)
	set := n.Normalize(testGame(), in)

	if set.Get(HeadToHead).IsPresent() {
		t.Error("zero meetings must leave head-to-head absent, not zero")
	}
}

func TestNormalizeGoalieAllOrNothing(t *testing.T) {
	tests := []struct {
		name    string
		goalies *models.GoaliePair
	}{
		{"No starters", nil},
		{"Malformed home save pct", &models.GoaliePair{HomeSavePct: 1.2, AwaySavePct: 0.91}},
		{"Zero away save pct", &models.GoaliePair{HomeSavePct: 0.91, AwaySavePct: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fullInputs()
			in.Goalies = tt.goalies

			n := NewNormalizer(1.0, nil)
			set := n.Normalize(testGame(), in)

			if set.Get(Goalie).IsPresent() {
				t.Error("expected goalie factor absent")
			}
		})
	}
}

func TestNormalizeMalformedPctClamped(t *testing.T) {
	in := fullInputs()
	in.HomeSummary.PowerPlayPct = 1.8 // clamps to 1.0
	in.AwaySummary.PenaltyKillPct = -0.2

	n := NewNormalizer(1.0, nil)
	set := n.Normalize(testGame(), in)

	v, ok := set.Get(SpecialTeams).Value()
	if !ok {
		t.Fatal("malformed percentages clamp, never drop the factor")
	}
	// home (1.0 + 0.82)/2 = 0.91, away (0.21 + 0)/2 = 0.105 -> *5 clamps to 1
	if v != 1.0 {
		t.Errorf("expected clamped special-teams value 1.0, got %v", v)
	}
}

func TestNormalizeInjuryDifferential(t *testing.T) {
	in := fullInputs()
	in.HomeInjury = 1.0
	in.AwayInjury = 0.5

	n := NewNormalizer(1.0, nil)
	set := n.Normalize(testGame(), in)

	v, ok := set.Get(Injury).Value()
	if !ok {
		t.Fatal("injury differential is always present")
	}
	if math.Abs(v-(-0.5)) > tolerance {
		t.Errorf("expected injury differential -0.5, got %v", v)
	}
}
