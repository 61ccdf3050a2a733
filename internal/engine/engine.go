package engine

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sportify/transfer-scout/internal/types"
)

// DefaultTopN is the number of recommendations retained when the caller
// does not specify a limit.
const DefaultTopN = 20

// DefaultRecommendationTTL is how long a recommendation stays current
// before it is considered archived. Feedback extends it.
const DefaultRecommendationTTL = 30 * 24 * time.Hour

// SignalStore is the engine's read/write handle on player, signal and
// recommendation data. Reads happen concurrently across in-flight
// scoring tasks; the only writes are the final recommendation inserts.
type SignalStore interface {
	// AvailableCandidates returns the pool of available players with
	// current-season form and consistency scores attached (neutral 0.5
	// when no performance record exists).
	AvailableCandidates(ctx context.Context) ([]types.PlayerCandidate, error)

	// AvailabilitySignals returns the player's active, non-expired
	// injury and suspension signals.
	AvailabilitySignals(ctx context.Context, playerID uuid.UUID) ([]types.Signal, error)

	// RiskSignalStats aggregates the player's active risk signals.
	RiskSignalStats(ctx context.Context, playerID uuid.UUID) (types.RiskStats, error)

	// NewsConfidence averages extraction confidence for articles
	// mentioning the player published since the given time. ok is false
	// when no such records exist.
	NewsConfidence(ctx context.Context, playerID uuid.UUID, since time.Time) (confidence float64, ok bool, err error)

	// PlayerSignals returns the player's most recent active signals,
	// newest first, up to limit.
	PlayerSignals(ctx context.Context, playerID uuid.UUID, limit int) ([]types.Signal, error)

	// SaveRecommendation persists one recommendation row.
	SaveRecommendation(ctx context.Context, rec *types.Recommendation) error

	// ArchiveRecommendationsBefore archives the club's live
	// recommendations created before the given time, returning the
	// number of rows archived.
	ArchiveRecommendationsBefore(ctx context.Context, clubID uuid.UUID, before time.Time) (int64, error)
}

// Engine is a stateless recommendation service holding only a store
// handle. All methods are functions of their explicit inputs plus that
// handle.
type Engine struct {
	store SignalStore
}

// New creates an Engine backed by the given store.
func New(store SignalStore) *Engine {
	return &Engine{store: store}
}

// Generate runs the full pipeline for one need profile: filter, score,
// rank, explain, persist. It returns the ranked recommendations held in
// memory; persistence failures for individual rows are logged and
// skipped without affecting the returned list. Read failures during
// filtering or scoring abort the whole run.
func (e *Engine) Generate(ctx context.Context, need *types.ClubNeedProfile, topN int) ([]types.Recommendation, error) {
	if need == nil {
		return nil, &InvalidNeedProfileError{Reason: "need profile is nil"}
	}
	if need.PositionsRequired == nil {
		return nil, &InvalidNeedProfileError{Reason: "positions_required is absent"}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	// Rows produced by this run carry runStart as their creation time;
	// prior recommendations stay live until the run has succeeded and
	// are then archived by created_at < runStart, so a failed run never
	// empties the cached read path.
	runStart := time.Now().UTC()

	pool, err := e.store.AvailableCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading candidate pool: %w", err)
	}

	candidates := FilterCandidates(pool, need)
	log.Printf("Found %d candidates after filtering", len(candidates))
	if len(candidates) == 0 {
		e.archivePrior(ctx, need.ClubID, runStart)
		return []types.Recommendation{}, nil
	}

	scored, err := e.scoreAll(ctx, candidates, need)
	if err != nil {
		return nil, err
	}

	// Stable sort: ties keep filter-returned order so identical inputs
	// always produce the identical ranked list.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})
	if len(scored) > topN {
		scored = scored[:topN]
	}

	expires := runStart.Add(DefaultRecommendationTTL)
	recs := make([]types.Recommendation, 0, len(scored))
	for i := range scored {
		sc := &scored[i]
		recs = append(recs, types.Recommendation{
			ID:                uuid.New(),
			ClubID:            need.ClubID,
			ClubNeedID:        need.ID,
			PlayerID:          sc.Candidate.ID,
			RankPosition:      i + 1,
			FitScore:          sc.FitScore,
			PerformanceScore:  sc.PerformanceScore,
			AvailabilityScore: sc.AvailabilityScore,
			RiskPenalty:       sc.RiskPenalty,
			NewsConfidence:    sc.NewsConfidence,
			FinalScore:        sc.FinalScore,
			Explanation:       e.explain(ctx, sc, need),
			ExpiresAt:         &expires,
			CreatedAt:         runStart,
			PlayerName:        sc.Candidate.FullName,
			PrimaryPosition:   sc.Candidate.PrimaryPosition,
			PlayerAge:         sc.Candidate.Age,
			MarketValueEUR:    sc.Candidate.MarketValueEUR,
		})
	}

	// Persist row by row. Inserts are independent; one failure must not
	// abort the others or change what the caller gets back.
	for i := range recs {
		if err := e.store.SaveRecommendation(ctx, &recs[i]); err != nil {
			log.Printf("Warning: failed to persist recommendation for player %s: %v", recs[i].PlayerID, err)
		}
	}

	e.archivePrior(ctx, need.ClubID, runStart)

	return recs, nil
}

// archivePrior retires recommendations from earlier runs once the new
// run has produced its rows. Archive failures are logged, not fatal;
// stale rows are filtered by expiry on the read path anyway.
func (e *Engine) archivePrior(ctx context.Context, clubID uuid.UUID, before time.Time) {
	archived, err := e.store.ArchiveRecommendationsBefore(ctx, clubID, before)
	if err != nil {
		log.Printf("Warning: failed to archive prior recommendations for club %s: %v", clubID, err)
		return
	}
	if archived > 0 {
		log.Printf("Archived %d prior recommendations for club %s", archived, clubID)
	}
}

// scoreAll fans out scoring across candidates and gathers the results.
// Each goroutine writes only its own slot, so concurrency cannot reorder
// or perturb scores; any lookup error cancels the group and the run
// fails wholesale.
func (e *Engine) scoreAll(ctx context.Context, candidates []types.PlayerCandidate, need *types.ClubNeedProfile) ([]types.ScoredCandidate, error) {
	scored := make([]types.ScoredCandidate, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		g.Go(func() error {
			sc, err := e.scoreCandidate(gCtx, c, need)
			if err != nil {
				return err
			}
			scored[i] = sc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring candidates: %w", err)
	}

	return scored, nil
}
