package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sportify/transfer-scout/internal/types"
)

// currentSeason returns the season label performance records are keyed
// by, e.g. "2026/2027".
func currentSeason() string {
	year := time.Now().Year()
	return fmt.Sprintf("%d/%d", year, year+1)
}

// AvailableCandidates returns the pool of available players as ranking
// snapshots, with current-season form and consistency scores attached.
// Players without a performance record get neutral 0.5 scores.
func (db *DB) AvailableCandidates(ctx context.Context) ([]types.PlayerCandidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT p.id, p.full_name, p.primary_position, p.secondary_positions,
		        p.date_of_birth, p.market_value_eur, COALESCE(p.preferred_foot, ''),
		        p.is_available,
		        COALESCE(pp.form_score, 0.5), COALESCE(pp.consistency_score, 0.5)
		 FROM players p
		 LEFT JOIN player_performance pp ON p.id = pp.player_id AND pp.season = $1
		 WHERE p.is_available = true`,
		currentSeason(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate pool: %w", err)
	}
	defer rows.Close()

	now := time.Now()
	var candidates []types.PlayerCandidate
	for rows.Next() {
		var c types.PlayerCandidate
		var dob time.Time
		if err := rows.Scan(&c.ID, &c.FullName, &c.PrimaryPosition, &c.SecondaryPositions,
			&dob, &c.MarketValueEUR, &c.PreferredFoot, &c.IsAvailable,
			&c.FormScore, &c.ConsistencyScore); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		c.Age = types.AgeAt(dob, now)
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// GetPlayer retrieves a player by ID. Returns nil when not found.
func (db *DB) GetPlayer(ctx context.Context, id uuid.UUID) (*types.Player, error) {
	row := db.pool.QueryRow(ctx, selectPlayerColumns+` WHERE id = $1`, id)
	return scanPlayer(row)
}

// GetPlayerByExternalID retrieves a player by external ID. Returns nil
// when not found.
func (db *DB) GetPlayerByExternalID(ctx context.Context, externalID string) (*types.Player, error) {
	row := db.pool.QueryRow(ctx, selectPlayerColumns+` WHERE external_id = $1`, externalID)
	return scanPlayer(row)
}

const selectPlayerColumns = `SELECT id, external_id, COALESCE(first_name, ''), COALESCE(last_name, ''),
	full_name, date_of_birth, COALESCE(nationality, ''), primary_position, secondary_positions,
	COALESCE(preferred_foot, ''), height_cm, weight_kg, market_value_eur, contract_end_date,
	COALESCE(contract_status, ''), current_club_id, is_available, created_at, last_updated
	FROM players`

func scanPlayer(row pgx.Row) (*types.Player, error) {
	var p types.Player
	err := row.Scan(&p.ID, &p.ExternalID, &p.FirstName, &p.LastName, &p.FullName,
		&p.DateOfBirth, &p.Nationality, &p.PrimaryPosition, &p.SecondaryPositions,
		&p.PreferredFoot, &p.HeightCM, &p.WeightKG, &p.MarketValueEUR, &p.ContractEndDate,
		&p.ContractStatus, &p.CurrentClubID, &p.IsAvailable, &p.CreatedAt, &p.LastUpdated)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	return &p, nil
}

// CreatePlayer inserts a new player record and returns it with
// server-assigned fields populated.
func (db *DB) CreatePlayer(ctx context.Context, p *types.Player) (*types.Player, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO players
		 (external_id, first_name, last_name, full_name, date_of_birth, nationality,
		  primary_position, secondary_positions, preferred_foot, height_cm, weight_kg,
		  market_value_eur, contract_end_date, contract_status, current_club_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13, NULLIF($14, ''), $15)
		 RETURNING id, is_available, created_at, last_updated`,
		p.ExternalID, p.FirstName, p.LastName, p.FullName, p.DateOfBirth, p.Nationality,
		p.PrimaryPosition, p.SecondaryPositions, p.PreferredFoot, p.HeightCM, p.WeightKG,
		p.MarketValueEUR, p.ContractEndDate, p.ContractStatus, p.CurrentClubID,
	)
	created := *p
	if err := row.Scan(&created.ID, &created.IsAvailable, &created.CreatedAt, &created.LastUpdated); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &created, nil
}

// PlayerUpdate holds the mutable player fields; nil fields are left
// unchanged.
type PlayerUpdate struct {
	FullName           *string
	Nationality        *string
	PrimaryPosition    *string
	SecondaryPositions []string
	PreferredFoot      *string
	MarketValueEUR     *int64
	ContractStatus     *string
	CurrentClubID      *uuid.UUID
	IsAvailable        *bool
}

// UpdatePlayer applies a partial update. Returns nil when the player
// does not exist or no fields were set.
func (db *DB) UpdatePlayer(ctx context.Context, id uuid.UUID, upd PlayerUpdate) (*types.Player, error) {
	sets := []string{}
	args := []any{}
	argNum := 1

	add := func(col string, val any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, argNum))
		args = append(args, val)
		argNum++
	}

	if upd.FullName != nil {
		add("full_name", *upd.FullName)
	}
	if upd.Nationality != nil {
		add("nationality", *upd.Nationality)
	}
	if upd.PrimaryPosition != nil {
		add("primary_position", *upd.PrimaryPosition)
	}
	if upd.SecondaryPositions != nil {
		add("secondary_positions", upd.SecondaryPositions)
	}
	if upd.PreferredFoot != nil {
		add("preferred_foot", *upd.PreferredFoot)
	}
	if upd.MarketValueEUR != nil {
		add("market_value_eur", *upd.MarketValueEUR)
	}
	if upd.ContractStatus != nil {
		add("contract_status", *upd.ContractStatus)
	}
	if upd.CurrentClubID != nil {
		add("current_club_id", *upd.CurrentClubID)
	}
	if upd.IsAvailable != nil {
		add("is_available", *upd.IsAvailable)
	}

	if len(sets) == 0 {
		return nil, nil
	}

	query := "UPDATE players SET "
	for i, s := range sets {
		if i > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(", last_updated = NOW() WHERE id = $%d", argNum)
	args = append(args, id)

	result, err := db.pool.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, nil
	}
	return db.GetPlayer(ctx, id)
}

// SearchPlayersByPosition finds available players whose primary or
// secondary positions include the given position code.
func (db *DB) SearchPlayersByPosition(ctx context.Context, position string, limit int) ([]types.Player, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.pool.Query(ctx,
		selectPlayerColumns+`
		 WHERE (primary_position = $1 OR $1 = ANY(secondary_positions))
		 AND is_available = true
		 ORDER BY full_name ASC
		 LIMIT $2`,
		position, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	defer rows.Close()
	return collectPlayers(rows)
}

// ListPlayersByClub returns all players currently at a club.
func (db *DB) ListPlayersByClub(ctx context.Context, clubID uuid.UUID) ([]types.Player, error) {
	rows, err := db.pool.Query(ctx,
		selectPlayerColumns+` WHERE current_club_id = $1 ORDER BY full_name ASC`,
		clubID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()
	return collectPlayers(rows)
}

func collectPlayers(rows pgx.Rows) ([]types.Player, error) {
	var players []types.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *p)
	}
	return players, rows.Err()
}

// PlayerPerformance returns a player's performance records, most recent
// season first. An empty season returns all seasons.
func (db *DB) PlayerPerformance(ctx context.Context, playerID uuid.UUID, season string) ([]types.PerformanceRecord, error) {
	query := `SELECT id, player_id, season, appearances, goals, assists, minutes_played,
	          form_score, consistency_score, created_at
	          FROM player_performance WHERE player_id = $1`
	args := []any{playerID}
	if season != "" {
		query += ` AND season = $2`
		args = append(args, season)
	}
	query += ` ORDER BY season DESC`

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance: %w", err)
	}
	defer rows.Close()

	var records []types.PerformanceRecord
	for rows.Next() {
		var r types.PerformanceRecord
		if err := rows.Scan(&r.ID, &r.PlayerID, &r.Season, &r.Appearances, &r.Goals,
			&r.Assists, &r.MinutesPlayed, &r.FormScore, &r.ConsistencyScore, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan performance record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpsertPerformance records or replaces a player's metrics for a season.
func (db *DB) UpsertPerformance(ctx context.Context, r *types.PerformanceRecord) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO player_performance
		 (player_id, season, appearances, goals, assists, minutes_played, form_score, consistency_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (player_id, season) DO UPDATE SET
		 appearances = $3, goals = $4, assists = $5, minutes_played = $6,
		 form_score = $7, consistency_score = $8`,
		r.PlayerID, r.Season, r.Appearances, r.Goals, r.Assists, r.MinutesPlayed,
		r.FormScore, r.ConsistencyScore,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert performance: %w", err)
	}
	return nil
}

// FindPlayerIDByName resolves a player name to an ID using a
// case-insensitive match on the full name. Returns uuid.Nil when no
// player matches.
func (db *DB) FindPlayerIDByName(ctx context.Context, name string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT id FROM players WHERE full_name ILIKE '%' || $1 || '%' LIMIT 1`,
		name,
	).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return uuid.Nil, nil
		}
		return uuid.Nil, fmt.Errorf("failed to resolve player name: %w", err)
	}
	return id, nil
}
