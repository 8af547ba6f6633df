package predictor

import (
	"github.com/yourusername/puckcast/internal/factor"
)

// Aggregate combines the present differentials into a single score: the
// weighted average over present factors only. Dividing by the sum of
// present weights keeps the score on the same scale no matter how many
// factors are available, so an absent factor neither drags the result
// toward 0 nor inflates the remaining signals.
//
// Returns the score and the number of factors that contributed. With no
// present weighted factors the score is 0 (an even game).
func Aggregate(set *factor.Set, weights WeightSpec) (float64, int) {
	var weightedSum, presentWeight float64
	used := 0

	for _, id := range weights.Factors() {
		d, ok := set.Get(id).Value()
		if !ok {
			continue
		}
		wt := weights.Weight(id)
		weightedSum += wt * d
		presentWeight += wt
		used++
	}

	if presentWeight == 0 {
		return 0, 0
	}
	return weightedSum / presentWeight, used
}
