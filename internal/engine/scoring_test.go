package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sportify/transfer-scout/internal/types"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }

func TestFinalScore_KnownWeights(t *testing.T) {
	sc := &types.ScoredCandidate{
		FitScore:          0.8,
		PerformanceScore:  0.6,
		AvailabilityScore: 1.0,
		NewsConfidence:    0.5,
		RiskPenalty:       0.1,
	}

	// 0.8*0.35 + 0.6*0.25 + 1.0*0.20 + 0.5*0.15 - 0.1*0.05 = 0.70
	assert.InDelta(t, 0.70, finalScore(sc), 1e-9)
}

func TestFitScore_FullMatch(t *testing.T) {
	c := &types.PlayerCandidate{
		PrimaryPosition: types.PositionST,
		Age:             25,
		MarketValueEUR:  50_000_000,
		PreferredFoot:   types.FootLeft,
	}
	need := &types.ClubNeedProfile{
		PositionsRequired: []string{types.PositionST},
		AgeMin:            intPtr(21),
		AgeMax:            intPtr(28),
		BudgetMaxEUR:      int64Ptr(80_000_000),
		PreferredFoot:     strPtr(types.FootLeft),
	}

	// 0.4 + 0.3 + 0.2 + 0.1 capped at 1
	assert.InDelta(t, 1.0, fitScore(c, need), 1e-9)
}

func TestFitScore_SecondaryPositionCredit(t *testing.T) {
	c := &types.PlayerCandidate{
		PrimaryPosition:    types.PositionRW,
		SecondaryPositions: []string{types.PositionST, types.PositionCAM},
		Age:                25,
	}
	need := &types.ClubNeedProfile{
		PositionsRequired: []string{types.PositionCAM},
	}

	// Secondary match gives 0.35 instead of 0.4; age within defaults
	// (0-40) gives 0.3; no budget cap gives 0.2; no foot preference
	// gives 0.1.
	assert.InDelta(t, 0.35+0.3+0.2+0.1, fitScore(c, need), 1e-9)
}

func TestFitScore_AgeDecayOutsideRange(t *testing.T) {
	c := &types.PlayerCandidate{
		PrimaryPosition: types.PositionCM,
		Age:             35,
	}
	need := &types.ClubNeedProfile{
		PositionsRequired: []string{},
		AgeMax:            intPtr(30),
	}

	// 5 years above age_max: 0.3 * (1 - 5/10) = 0.15, plus budget 0.2
	// and foot 0.1. No position credit for an empty required set.
	assert.InDelta(t, 0.15+0.2+0.1, fitScore(c, need), 1e-9)
}

func TestFitScore_AgeDecayFloorsAtZero(t *testing.T) {
	c := &types.PlayerCandidate{Age: 45}
	need := &types.ClubNeedProfile{
		PositionsRequired: []string{},
		AgeMax:            intPtr(30),
	}

	// 15 years out: decay is negative, clamped to 0.
	assert.InDelta(t, 0.2+0.1, fitScore(c, need), 1e-9)
}

func TestFitScore_OverBudgetLosesBudgetCredit(t *testing.T) {
	c := &types.PlayerCandidate{
		PrimaryPosition: types.PositionST,
		Age:             25,
		MarketValueEUR:  100_000_000,
	}
	need := &types.ClubNeedProfile{
		PositionsRequired: []string{types.PositionST},
		BudgetMaxEUR:      int64Ptr(60_000_000),
	}

	assert.InDelta(t, 0.4+0.3+0.1, fitScore(c, need), 1e-9)
}

func TestFitScore_AmbidextrousMatchesAnyFootPreference(t *testing.T) {
	c := &types.PlayerCandidate{
		Age:           25,
		PreferredFoot: types.FootBoth,
	}
	need := &types.ClubNeedProfile{
		PositionsRequired: []string{},
		PreferredFoot:     strPtr(types.FootRight),
	}

	assert.InDelta(t, 0.3+0.2+0.1, fitScore(c, need), 1e-9)
}

func TestFitScore_AlwaysWithinBounds(t *testing.T) {
	candidates := []types.PlayerCandidate{
		{PrimaryPosition: types.PositionST, Age: 17, PreferredFoot: types.FootLeft},
		{PrimaryPosition: types.PositionGK, Age: 44, MarketValueEUR: 500_000_000},
		{Age: 0},
	}
	needs := []*types.ClubNeedProfile{
		{PositionsRequired: []string{types.PositionST}, AgeMin: intPtr(20), AgeMax: intPtr(22)},
		{PositionsRequired: []string{}},
		{PositionsRequired: []string{types.PositionCB}, BudgetMaxEUR: int64Ptr(1), PreferredFoot: strPtr(types.FootRight)},
	}

	for _, c := range candidates {
		for _, need := range needs {
			score := fitScore(&c, need)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		}
	}
}

func TestAvailabilityScore_NoSignalsIsFullyAvailable(t *testing.T) {
	assert.Equal(t, 1.0, availabilityScore(nil))
}

func TestAvailabilityScore_TwoInjurySignals(t *testing.T) {
	signals := []types.Signal{
		{Type: types.SignalInjury, Value: 0.5},
		{Type: types.SignalInjury, Value: 0.5},
	}

	// 1 - (0.5*0.3 + 0.5*0.3) = 0.7
	assert.InDelta(t, 0.7, availabilityScore(signals), 1e-9)
}

func TestAvailabilityScore_FloorsAtZero(t *testing.T) {
	signals := []types.Signal{
		{Type: types.SignalInjury, Value: 1.0},
		{Type: types.SignalSuspension, Value: 1.0},
		{Type: types.SignalInjury, Value: 1.0},
		{Type: types.SignalInjury, Value: 1.0},
	}

	assert.Equal(t, 0.0, availabilityScore(signals))
}

func TestRiskPenalty_CountAndAverage(t *testing.T) {
	// 2*0.1 + 0.5*0.2 = 0.3
	assert.InDelta(t, 0.3, riskPenalty(types.RiskStats{Count: 2, AvgValue: 0.5}), 1e-9)
}

func TestRiskPenalty_CappedRegardlessOfCount(t *testing.T) {
	assert.Equal(t, 0.4, riskPenalty(types.RiskStats{Count: 50, AvgValue: 1.0}))
}

func TestRiskPenalty_NoSignals(t *testing.T) {
	assert.Equal(t, 0.0, riskPenalty(types.RiskStats{}))
}
