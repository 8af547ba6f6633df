// Package predictor blends normalized factor differentials into a
// home-win probability and expresses it as American odds.
package predictor

import (
	"github.com/yourusername/puckcast/internal/config"
	"github.com/yourusername/puckcast/internal/factor"
)

// WeightSpec is the immutable per-factor weight table. Factors with a
// zero weight are simply not part of the table.
type WeightSpec struct {
	weights map[factor.ID]float64
}

// NewWeightSpec builds a weight table from explicit per-factor weights,
// dropping zero entries.
func NewWeightSpec(weights map[factor.ID]float64) WeightSpec {
	w := make(map[factor.ID]float64, len(weights))
	for id, wt := range weights {
		if wt > 0 {
			w[id] = wt
		}
	}
	return WeightSpec{weights: w}
}

// WeightSpecFromConfig builds the weight table from configuration.
func WeightSpecFromConfig(cfg config.WeightsConfig) WeightSpec {
	return NewWeightSpec(map[factor.ID]float64{
		factor.HomeIce:      cfg.HomeIce,
		factor.Last10:       cfg.Last10,
		factor.SeasonRecord: cfg.SeasonRecord,
		factor.Goalie:       cfg.Goalie,
		factor.SpecialTeams: cfg.SpecialTeams,
		factor.HeadToHead:   cfg.HeadToHead,
		factor.Shots:        cfg.Shots,
		factor.GoalDiff:     cfg.GoalDiff,
		factor.Injury:       cfg.Injury,
	})
}

// Weight returns the configured weight for a factor (0 if unweighted).
func (w WeightSpec) Weight(id factor.ID) float64 {
	return w.weights[id]
}

// Factors returns the weighted factor identities in canonical order.
func (w WeightSpec) Factors() []factor.ID {
	ids := make([]factor.ID, 0, len(w.weights))
	for _, id := range factor.AllIDs() {
		if _, ok := w.weights[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Len returns the number of weighted factors.
func (w WeightSpec) Len() int {
	return len(w.weights)
}
