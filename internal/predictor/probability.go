package predictor

import (
	"math"
)

// probEpsilon keeps the mapped probability inside the open interval;
// American odds are undefined at exactly 0 or 1.
const probEpsilon = 0.001

// WinProbability maps an aggregate score to the home-win probability
// through a logistic squash: strictly increasing, symmetric around 0.5
// at score 0, saturating toward the extremes at a rate set by the
// sensitivity constant.
func WinProbability(score, sensitivity float64) float64 {
	p := 1.0 / (1.0 + math.Exp(-sensitivity*score))
	return clampProb(p)
}

func clampProb(p float64) float64 {
	if p < probEpsilon {
		return probEpsilon
	}
	if p > 1-probEpsilon {
		return 1 - probEpsilon
	}
	return p
}
