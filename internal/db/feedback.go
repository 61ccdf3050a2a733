package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sportify/transfer-scout/internal/types"
)

// CreateFeedback records a club's reaction to a recommendation.
func (db *DB) CreateFeedback(ctx context.Context, req *types.FeedbackRequest) (*types.Feedback, error) {
	var f types.Feedback
	err := db.pool.QueryRow(ctx,
		`INSERT INTO club_feedback (club_id, recommendation_id, player_id, feedback_type, rating, comment)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))
		 RETURNING id, club_id, recommendation_id, player_id, feedback_type,
		           rating, COALESCE(comment, ''), created_at`,
		req.ClubID, req.RecommendationID, req.PlayerID, req.FeedbackType, req.Rating, req.Comment,
	).Scan(&f.ID, &f.ClubID, &f.RecommendationID, &f.PlayerID, &f.FeedbackType,
		&f.Rating, &f.Comment, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return &f, nil
}

// FeedbackHistory returns a club's feedback entries with player display
// fields joined, newest first.
func (db *DB) FeedbackHistory(ctx context.Context, clubID uuid.UUID, limit int) ([]types.Feedback, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT f.id, f.club_id, f.recommendation_id, f.player_id, f.feedback_type,
		        f.rating, COALESCE(f.comment, ''), f.created_at,
		        p.full_name, p.primary_position
		 FROM club_feedback f
		 JOIN players p ON f.player_id = p.id
		 WHERE f.club_id = $1
		 ORDER BY f.created_at DESC
		 LIMIT $2`,
		clubID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback history: %w", err)
	}
	defer rows.Close()

	var history []types.Feedback
	for rows.Next() {
		var f types.Feedback
		if err := rows.Scan(&f.ID, &f.ClubID, &f.RecommendationID, &f.PlayerID, &f.FeedbackType,
			&f.Rating, &f.Comment, &f.CreatedAt, &f.PlayerName, &f.PrimaryPosition); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		history = append(history, f)
	}
	return history, rows.Err()
}
