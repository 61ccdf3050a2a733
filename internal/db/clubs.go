package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sportify/transfer-scout/internal/types"
)

const selectClubColumns = `SELECT id, external_id, name, COALESCE(country, ''), COALESCE(league, ''),
	founded_year, COALESCE(stadium_name, ''), COALESCE(official_website, ''), is_active, created_at
	FROM clubs`

// GetClub retrieves a club by ID. Returns nil when not found.
func (db *DB) GetClub(ctx context.Context, id uuid.UUID) (*types.Club, error) {
	row := db.pool.QueryRow(ctx, selectClubColumns+` WHERE id = $1`, id)
	return scanClub(row)
}

// GetClubByExternalID retrieves a club by its external identifier.
// Returns nil when not found.
func (db *DB) GetClubByExternalID(ctx context.Context, externalID string) (*types.Club, error) {
	row := db.pool.QueryRow(ctx, selectClubColumns+` WHERE external_id = $1`, externalID)
	return scanClub(row)
}

func scanClub(row pgx.Row) (*types.Club, error) {
	var c types.Club
	err := row.Scan(&c.ID, &c.ExternalID, &c.Name, &c.Country, &c.League,
		&c.FoundedYear, &c.StadiumName, &c.OfficialWebsite, &c.IsActive, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan club: %w", err)
	}
	return &c, nil
}

// CreateClub inserts a new club record.
func (db *DB) CreateClub(ctx context.Context, c *types.Club) (*types.Club, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO clubs (external_id, name, country, league, founded_year, stadium_name, official_website)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''))
		 RETURNING id, is_active, created_at`,
		c.ExternalID, c.Name, c.Country, c.League, c.FoundedYear, c.StadiumName, c.OfficialWebsite,
	)
	created := *c
	if err := row.Scan(&created.ID, &created.IsActive, &created.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create club: %w", err)
	}
	return &created, nil
}

// ListClubs returns active clubs, optionally filtered by league.
func (db *DB) ListClubs(ctx context.Context, league string) ([]types.Club, error) {
	query := selectClubColumns + ` WHERE is_active = true`
	args := []any{}
	if league != "" {
		query += ` AND league = $1`
		args = append(args, league)
	}
	query += ` ORDER BY name ASC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}
	defer rows.Close()

	var clubs []types.Club
	for rows.Next() {
		c, err := scanClub(rows)
		if err != nil {
			return nil, err
		}
		clubs = append(clubs, *c)
	}
	return clubs, rows.Err()
}

// ClubNeedProfile returns the club's active need profile, or nil when
// the club has not defined one.
func (db *DB) ClubNeedProfile(ctx context.Context, clubID uuid.UUID) (*types.ClubNeedProfile, error) {
	var n types.ClubNeedProfile
	err := db.pool.QueryRow(ctx,
		`SELECT id, club_id, positions_required, age_min, age_max,
		        budget_min_eur, budget_max_eur, preferred_foot,
		        COALESCE(tactical_style, ''), COALESCE(urgency_level, ''),
		        COALESCE(description, ''), created_at, updated_at
		 FROM club_needs
		 WHERE club_id = $1 AND is_active = true`,
		clubID,
	).Scan(&n.ID, &n.ClubID, &n.PositionsRequired, &n.AgeMin, &n.AgeMax,
		&n.BudgetMinEUR, &n.BudgetMaxEUR, &n.PreferredFoot,
		&n.TacticalStyle, &n.UrgencyLevel, &n.Description, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query need profile: %w", err)
	}
	return &n, nil
}

// UpsertNeedProfile creates or replaces the club's need profile. A club
// holds at most one active profile; a new one overwrites the prior.
func (db *DB) UpsertNeedProfile(ctx context.Context, clubID uuid.UUID, req *types.ClubNeedRequest) (*types.ClubNeedProfile, error) {
	var n types.ClubNeedProfile
	err := db.pool.QueryRow(ctx,
		`INSERT INTO club_needs
		 (club_id, positions_required, age_min, age_max, budget_min_eur, budget_max_eur,
		  preferred_foot, tactical_style, urgency_level, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''))
		 ON CONFLICT (club_id) DO UPDATE SET
		 positions_required = $2, age_min = $3, age_max = $4,
		 budget_min_eur = $5, budget_max_eur = $6, preferred_foot = $7,
		 tactical_style = NULLIF($8, ''), urgency_level = NULLIF($9, ''),
		 description = NULLIF($10, ''), is_active = true, updated_at = NOW()
		 RETURNING id, club_id, positions_required, age_min, age_max,
		           budget_min_eur, budget_max_eur, preferred_foot,
		           COALESCE(tactical_style, ''), COALESCE(urgency_level, ''),
		           COALESCE(description, ''), created_at, updated_at`,
		clubID, req.PositionsRequired, req.AgeMin, req.AgeMax,
		req.BudgetMinEUR, req.BudgetMaxEUR, req.PreferredFoot,
		req.TacticalStyle, req.UrgencyLevel, req.Description,
	).Scan(&n.ID, &n.ClubID, &n.PositionsRequired, &n.AgeMin, &n.AgeMax,
		&n.BudgetMinEUR, &n.BudgetMaxEUR, &n.PreferredFoot,
		&n.TacticalStyle, &n.UrgencyLevel, &n.Description, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert need profile: %w", err)
	}
	return &n, nil
}
