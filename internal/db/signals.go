package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sportify/transfer-scout/internal/types"
)

// CreateSignal records a new signal for a player.
func (db *DB) CreateSignal(ctx context.Context, s *types.Signal) (*types.Signal, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO player_signals (player_id, signal_type, signal_value, is_risk, expires_at, evidence)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, is_active, created_at`,
		s.PlayerID, s.Type, s.Value, s.IsRisk, s.ExpiresAt, s.Evidence,
	)
	created := *s
	if err := row.Scan(&created.ID, &created.IsActive, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create signal: %w", err)
	}
	return &created, nil
}

// PlayerSignals returns a player's most recent active signals, newest
// first. Deactivated signals never surface in explanations or the
// signals view.
func (db *DB) PlayerSignals(ctx context.Context, playerID uuid.UUID, limit int) ([]types.Signal, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, player_id, signal_type, signal_value, is_risk, is_active,
		        expires_at, COALESCE(evidence, ''), created_at
		 FROM player_signals
		 WHERE player_id = $1 AND is_active = true
		 ORDER BY created_at DESC
		 LIMIT $2`,
		playerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query player signals: %w", err)
	}
	defer rows.Close()
	return collectSignals(rows)
}

// AvailabilitySignals returns the player's active, non-expired injury
// and suspension signals.
func (db *DB) AvailabilitySignals(ctx context.Context, playerID uuid.UUID) ([]types.Signal, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, player_id, signal_type, signal_value, is_risk, is_active,
		        expires_at, COALESCE(evidence, ''), created_at
		 FROM player_signals
		 WHERE player_id = $1
		 AND signal_type IN ($2, $3)
		 AND is_active = true
		 AND (expires_at IS NULL OR expires_at > NOW())`,
		playerID, types.SignalInjury, types.SignalSuspension,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability signals: %w", err)
	}
	defer rows.Close()
	return collectSignals(rows)
}

// RiskSignalStats aggregates the player's active risk signals.
func (db *DB) RiskSignalStats(ctx context.Context, playerID uuid.UUID) (types.RiskStats, error) {
	var stats types.RiskStats
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(AVG(signal_value), 0)
		 FROM player_signals
		 WHERE player_id = $1
		 AND is_risk = true
		 AND is_active = true
		 AND (expires_at IS NULL OR expires_at > NOW())`,
		playerID,
	).Scan(&stats.Count, &stats.AvgValue)
	if err != nil {
		return types.RiskStats{}, fmt.Errorf("failed to aggregate risk signals: %w", err)
	}
	return stats, nil
}

// DeactivateSignal marks a signal inactive so it no longer affects
// scoring. Returns false when the signal does not exist.
func (db *DB) DeactivateSignal(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE player_signals SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to deactivate signal: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

func collectSignals(rows pgx.Rows) ([]types.Signal, error) {
	var signals []types.Signal
	for rows.Next() {
		var s types.Signal
		if err := rows.Scan(&s.ID, &s.PlayerID, &s.Type, &s.Value, &s.IsRisk,
			&s.IsActive, &s.ExpiresAt, &s.Evidence, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan signal: %w", err)
		}
		signals = append(signals, s)
	}
	return signals, rows.Err()
}
