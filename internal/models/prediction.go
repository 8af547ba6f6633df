package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PredictionRecord is the final output for a single game: the home-win
// probability and its American-odds expression for both sides. The two
// odds values are always consistent images of HomeWinProb and its
// complement; they are never rounded independently of each other's sign.
type PredictionRecord struct {
	GameID           int64   `json:"gameId" validate:"required"`
	Date             string  `json:"date" validate:"required,datetime=2006-01-02"`
	HomeTeam         string  `json:"homeTeam" validate:"required"`
	AwayTeam         string  `json:"awayTeam" validate:"required"`
	HomeWinProb      float64 `json:"homeWinProb" validate:"gt=0,lt=1"`
	HomeAmericanOdds int     `json:"homeAmericanOdds" validate:"required"`
	AwayAmericanOdds int     `json:"awayAmericanOdds" validate:"required"`
}

// Favorite returns the abbreviation of the favored side, the home team
// on an even line.
func (p *PredictionRecord) Favorite() string {
	if p.HomeWinProb >= 0.5 {
		return p.HomeTeam
	}
	return p.AwayTeam
}

// HomeDecimalOdds returns the decimal-odds expression of the home
// American line, e.g. -150 -> 1.67, +150 -> 2.50.
func (p *PredictionRecord) HomeDecimalOdds() decimal.Decimal {
	return americanToDecimal(p.HomeAmericanOdds)
}

// AwayDecimalOdds returns the decimal-odds expression of the away line.
func (p *PredictionRecord) AwayDecimalOdds() decimal.Decimal {
	return americanToDecimal(p.AwayAmericanOdds)
}

func americanToDecimal(american int) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	a := decimal.NewFromInt(int64(american))
	if american > 0 {
		return a.Div(hundred).Add(decimal.NewFromInt(1)).Round(2)
	}
	return hundred.Div(a.Abs()).Add(decimal.NewFromInt(1)).Round(2)
}

// String renders the record the way the slate is printed.
func (p *PredictionRecord) String() string {
	return fmt.Sprintf("%s @ %s: Home %+d, Away %+d", p.AwayTeam, p.HomeTeam, p.HomeAmericanOdds, p.AwayAmericanOdds)
}

// Slate wraps one run's predictions for a date. This is the persisted
// envelope, one instance per invocation.
type Slate struct {
	RunID       uuid.UUID          `json:"runId"`
	Date        string             `json:"date" validate:"required,datetime=2006-01-02"`
	GeneratedAt time.Time          `json:"generatedAt"`
	Games       []PredictionRecord `json:"games"`
	Message     string             `json:"message,omitempty"`
}

// NewSlate creates an empty slate for the given date.
func NewSlate(date string) *Slate {
	return &Slate{
		RunID:       uuid.New(),
		Date:        date,
		GeneratedAt: time.Now().UTC(),
		Games:       []PredictionRecord{},
	}
}
