package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sportify/transfer-scout/internal/types"
)

// SaveRecommendation persists one ranked recommendation row.
func (db *DB) SaveRecommendation(ctx context.Context, rec *types.Recommendation) error {
	explanation, err := json.Marshal(rec.Explanation)
	if err != nil {
		return fmt.Errorf("failed to marshal explanation: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`INSERT INTO recommendations
		 (id, club_id, club_need_id, player_id, rank_position,
		  fit_score, performance_score, availability_score, risk_penalty, news_confidence,
		  final_score, explanation, expires_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		rec.ID, rec.ClubID, rec.ClubNeedID, rec.PlayerID, rec.RankPosition,
		rec.FitScore, rec.PerformanceScore, rec.AvailabilityScore, rec.RiskPenalty,
		rec.NewsConfidence, rec.FinalScore, explanation, rec.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save recommendation: %w", err)
	}
	return nil
}

// CurrentRecommendations returns the club's live recommendations with
// player display fields joined, best first. Archived and expired rows
// are excluded but never deleted.
func (db *DB) CurrentRecommendations(ctx context.Context, clubID uuid.UUID, limit int) ([]types.Recommendation, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.pool.Query(ctx,
		`SELECT r.id, r.club_id, r.club_need_id, r.player_id, r.rank_position,
		        r.fit_score, r.performance_score, r.availability_score, r.risk_penalty,
		        r.news_confidence, r.final_score, r.explanation, r.is_archived,
		        r.expires_at, r.created_at,
		        p.full_name, p.primary_position, p.date_of_birth, p.market_value_eur
		 FROM recommendations r
		 JOIN players p ON r.player_id = p.id
		 WHERE r.club_id = $1
		 AND r.is_archived = false
		 AND (r.expires_at IS NULL OR r.expires_at > NOW())
		 ORDER BY r.final_score DESC
		 LIMIT $2`,
		clubID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	var recs []types.Recommendation
	for rows.Next() {
		var rec types.Recommendation
		var explanation []byte
		var dob time.Time
		if err := rows.Scan(&rec.ID, &rec.ClubID, &rec.ClubNeedID, &rec.PlayerID, &rec.RankPosition,
			&rec.FitScore, &rec.PerformanceScore, &rec.AvailabilityScore, &rec.RiskPenalty,
			&rec.NewsConfidence, &rec.FinalScore, &explanation, &rec.IsArchived,
			&rec.ExpiresAt, &rec.CreatedAt,
			&rec.PlayerName, &rec.PrimaryPosition, &dob, &rec.MarketValueEUR); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		if err := json.Unmarshal(explanation, &rec.Explanation); err != nil {
			return nil, fmt.Errorf("failed to unmarshal explanation: %w", err)
		}
		rec.PlayerAge = types.AgeAt(dob, now)
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// ArchiveRecommendationsBefore marks a club's live recommendations
// created before the cutoff as archived. Called after a fresh ranking
// run has persisted its replacement rows; the cutoff keeps the new
// run's rows live.
func (db *DB) ArchiveRecommendationsBefore(ctx context.Context, clubID uuid.UUID, before time.Time) (int64, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE recommendations SET is_archived = true
		 WHERE club_id = $1 AND is_archived = false AND created_at < $2`,
		clubID, before,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to archive recommendations: %w", err)
	}
	return result.RowsAffected(), nil
}

// ExtendRecommendationExpiry pushes a recommendation's expiry out by the
// given duration. Returns false when the recommendation does not exist.
func (db *DB) ExtendRecommendationExpiry(ctx context.Context, id uuid.UUID, by time.Duration) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE recommendations
		 SET expires_at = COALESCE(expires_at, NOW()) + $2
		 WHERE id = $1`,
		id, by,
	)
	if err != nil {
		return false, fmt.Errorf("failed to extend recommendation expiry: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
