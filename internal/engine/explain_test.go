package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportify/transfer-scout/internal/types"
)

func scoredStriker() *types.ScoredCandidate {
	return &types.ScoredCandidate{
		Candidate: types.PlayerCandidate{
			ID:              uuid.New(),
			FullName:        "Test Striker",
			PrimaryPosition: types.PositionST,
			Age:             24,
			MarketValueEUR:  85_000_000,
		},
		FitScore:          0.825,
		PerformanceScore:  0.72,
		AvailabilityScore: 1.0,
	}
}

func TestExplain_TopReasons(t *testing.T) {
	store := newFakeStore()
	eng := New(store)
	sc := scoredStriker()
	need := &types.ClubNeedProfile{
		PositionsRequired: []string{types.PositionST},
		AgeMin:            intPtr(21),
		AgeMax:            intPtr(28),
	}

	expl := eng.explain(context.Background(), sc, need)

	require.Len(t, expl.TopReasons, 4)
	assert.Equal(t, "Position match: ST", expl.TopReasons[0])
	assert.Equal(t, "Age fit: 24 (target: 21-28)", expl.TopReasons[1])
	assert.Equal(t, "Recent form score: 72%", expl.TopReasons[2])
	assert.Equal(t, "Market value: €85,000,000", expl.TopReasons[3])
}

func TestExplain_StatsEvidenceRoundedPercentages(t *testing.T) {
	store := newFakeStore()
	eng := New(store)

	expl := eng.explain(context.Background(), scoredStriker(), &types.ClubNeedProfile{})

	assert.Equal(t, 83, expl.StatsEvidence.FitScore)
	assert.Equal(t, 72, expl.StatsEvidence.PerformanceScore)
	assert.Equal(t, 100, expl.StatsEvidence.AvailabilityScore)
}

func TestExplain_RiskIndicatorsCapitalized(t *testing.T) {
	store := newFakeStore()
	sc := scoredStriker()
	now := time.Now()
	store.signals[sc.Candidate.ID] = []types.Signal{
		{Type: types.SignalInjury, Evidence: "hamstring strain in training", CreatedAt: now},
		{Type: types.SignalSuspension, Evidence: "red card accumulation", CreatedAt: now},
		{Type: types.SignalRisk, Evidence: "contract dispute rumors", CreatedAt: now},
	}
	eng := New(store)

	expl := eng.explain(context.Background(), sc, &types.ClubNeedProfile{})

	require.Len(t, expl.RecentSignals, 3)
	require.Len(t, expl.RiskIndicators, 2)
	assert.Equal(t, "Injury: hamstring strain in training", expl.RiskIndicators[0])
	assert.Equal(t, "Suspension: red card accumulation", expl.RiskIndicators[1])
}

func TestExplain_SignalReadFailureDegradesGracefully(t *testing.T) {
	store := newFakeStore()
	store.availErr = nil
	sc := scoredStriker()
	eng := New(&failingSignalStore{fakeStore: store})

	expl := eng.explain(context.Background(), sc, &types.ClubNeedProfile{})

	// Generic explanation: the four standard reasons plus a degraded
	// note, no signals.
	require.Len(t, expl.TopReasons, 5)
	assert.Equal(t, "Signal history unavailable", expl.TopReasons[4])
	assert.Empty(t, expl.RecentSignals)
	assert.Empty(t, expl.RiskIndicators)
}

// failingSignalStore fails only the PlayerSignals read.
type failingSignalStore struct {
	*fakeStore
}

func (f *failingSignalStore) PlayerSignals(context.Context, uuid.UUID, int) ([]types.Signal, error) {
	return nil, errors.New("signal table unavailable")
}

func TestAgeRangeLabel(t *testing.T) {
	assert.Equal(t, "21-28", ageRangeLabel(&types.ClubNeedProfile{AgeMin: intPtr(21), AgeMax: intPtr(28)}))
	assert.Equal(t, "21+", ageRangeLabel(&types.ClubNeedProfile{AgeMin: intPtr(21)}))
	assert.Equal(t, "up to 28", ageRangeLabel(&types.ClubNeedProfile{AgeMax: intPtr(28)}))
	assert.Equal(t, "any age", ageRangeLabel(&types.ClubNeedProfile{}))
}

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "€0", FormatEUR(0))
	assert.Equal(t, "€950", FormatEUR(950))
	assert.Equal(t, "€1,000", FormatEUR(1000))
	assert.Equal(t, "€85,000,000", FormatEUR(85_000_000))
	assert.Equal(t, "-€1,500,000", FormatEUR(-1_500_000))
}
