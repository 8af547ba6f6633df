package predictor

import (
	"math"
)

// AmericanOdds converts the home-win probability into the American
// lines for both sides: negative for the favorite (stake to win 100),
// positive for the underdog (win on a 100 stake). The away line is the
// complementary probability through the inverted rule. With no vig the
// two sides share one magnitude, so exactly one side is negative;
// p = 0.5 yields the canonical (-100, +100).
func AmericanOdds(homeWinProb float64) (home, away int) {
	p := clampProb(homeWinProb)
	if p >= 0.5 {
		// Home is the favorite: stake 100·p/(1−p) to win 100. The away
		// underdog line 100·(1−q)/q at q = 1−p is the same number.
		line := int(math.Round(100 * p / (1 - p)))
		return -line, line
	}
	line := int(math.Round(100 * (1 - p) / p))
	return line, -line
}
