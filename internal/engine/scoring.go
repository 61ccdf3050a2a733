package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sportify/transfer-scout/internal/types"
)

// Fit score sub-component weights
const (
	fitPositionWeight  = 0.4
	fitSecondaryCredit = 0.35
	fitAgeWeight       = 0.3
	fitBudgetWeight    = 0.2
	fitFootWeight      = 0.1
)

// Final score weights. These are a fixed, hand-tuned heuristic and part
// of the tested contract; risk is subtractive.
const (
	finalFitWeight          = 0.35
	finalPerformanceWeight  = 0.25
	finalAvailabilityWeight = 0.20
	finalNewsWeight         = 0.15
	finalRiskWeight         = 0.05
)

const (
	// availabilitySignalPenalty is the per-signal penalty factor: each
	// active injury or suspension signal costs signal_value * 0.3.
	availabilitySignalPenalty = 0.3

	// Risk penalty parameters: count * 0.1 + avg_value * 0.2, capped.
	riskCountFactor = 0.1
	riskValueFactor = 0.2
	maxRiskPenalty  = 0.4

	// defaultAgeMax is the upper age bound assumed when the profile has
	// no age_max.
	defaultAgeMax = 40

	// ageDecayYears is the span over which the age sub-score linearly
	// decays to zero outside the target range.
	ageDecayYears = 10.0

	// NewsWindow is the lookback over which extraction confidence is
	// averaged into the news confidence score.
	NewsWindow = 7 * 24 * time.Hour
)

// scoreCandidate computes all five component scores for one candidate.
// Each candidate's computation is isolated: no shared mutable state, so
// candidates can be scored concurrently without affecting determinism.
func (e *Engine) scoreCandidate(ctx context.Context, c types.PlayerCandidate, need *types.ClubNeedProfile) (types.ScoredCandidate, error) {
	sc := types.ScoredCandidate{Candidate: c}

	sc.FitScore = fitScore(&c, need)
	sc.PerformanceScore = c.FormScore

	availSignals, err := e.store.AvailabilitySignals(ctx, c.ID)
	if err != nil {
		return sc, fmt.Errorf("fetching availability signals for %s: %w", c.ID, err)
	}
	sc.AvailabilityScore = availabilityScore(availSignals)

	riskStats, err := e.store.RiskSignalStats(ctx, c.ID)
	if err != nil {
		return sc, fmt.Errorf("fetching risk signals for %s: %w", c.ID, err)
	}
	sc.RiskPenalty = riskPenalty(riskStats)

	confidence, ok, err := e.store.NewsConfidence(ctx, c.ID, time.Now().Add(-NewsWindow))
	if err != nil {
		return sc, fmt.Errorf("fetching news confidence for %s: %w", c.ID, err)
	}
	if !ok {
		confidence = types.NeutralScore
	}
	sc.NewsConfidence = confidence

	sc.FinalScore = finalScore(&sc)
	return sc, nil
}

// fitScore measures structural compatibility between a candidate and a
// need profile across position, age, budget and foot. The sub-component
// weights sum to 1.0, so the raw sum is returned capped at 1.
func fitScore(c *types.PlayerCandidate, need *types.ClubNeedProfile) float64 {
	score := 0.0

	// Position fit: full credit for a primary match, partial for a
	// secondary-position match.
	if containsPosition(need.PositionsRequired, c.PrimaryPosition) {
		score += fitPositionWeight
	} else if matchesSecondary(c, need.PositionsRequired) {
		score += fitSecondaryCredit
	}

	// Age fit: full credit inside [age_min, age_max], linearly decaying
	// partial credit outside.
	ageMin := 0
	if need.AgeMin != nil {
		ageMin = *need.AgeMin
	}
	ageMax := defaultAgeMax
	if need.AgeMax != nil {
		ageMax = *need.AgeMax
	}
	if c.Age >= ageMin && c.Age <= ageMax {
		score += fitAgeWeight
	} else {
		decay := 1 - math.Abs(float64(c.Age-ageMax))/ageDecayYears
		score += fitAgeWeight * math.Max(0, decay)
	}

	// Budget fit: no budget_max means no upper bound.
	if need.BudgetMaxEUR == nil || c.MarketValueEUR <= *need.BudgetMaxEUR {
		score += fitBudgetWeight
	}

	// Preferred foot: free credit when the profile has no preference or
	// the candidate is ambidextrous.
	if need.PreferredFoot == nil || c.PreferredFoot == *need.PreferredFoot || c.PreferredFoot == types.FootBoth {
		score += fitFootWeight
	}

	return math.Min(1, score)
}

func matchesSecondary(c *types.PlayerCandidate, required []string) bool {
	for _, sec := range c.SecondaryPositions {
		if containsPosition(required, sec) {
			return true
		}
	}
	return false
}

// availabilityScore starts at 1 and loses signal_value * 0.3 per active
// injury or suspension signal, floored at 0. No signals means fully
// available.
func availabilityScore(signals []types.Signal) float64 {
	penalty := 0.0
	for _, s := range signals {
		penalty += s.Value * availabilitySignalPenalty
	}
	return math.Max(0, 1-penalty)
}

// riskPenalty combines the count and average severity of active risk
// signals, capped at maxRiskPenalty regardless of signal count.
func riskPenalty(stats types.RiskStats) float64 {
	return math.Min(maxRiskPenalty, float64(stats.Count)*riskCountFactor+stats.AvgValue*riskValueFactor)
}

// finalScore is the fixed weighted combination of all components.
func finalScore(sc *types.ScoredCandidate) float64 {
	return sc.FitScore*finalFitWeight +
		sc.PerformanceScore*finalPerformanceWeight +
		sc.AvailabilityScore*finalAvailabilityWeight +
		sc.NewsConfidence*finalNewsWeight -
		sc.RiskPenalty*finalRiskWeight
}
