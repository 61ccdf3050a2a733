// Package types provides type definitions for structured data used throughout the transfer-scout system.
package types

import (
	"time"

	"github.com/google/uuid"
)

// Preferred foot constants
const (
	FootLeft  = "left"
	FootRight = "right"
	FootBoth  = "both"
)

// Position codes used across player profiles and need profiles
const (
	PositionGK  = "GK"
	PositionCB  = "CB"
	PositionLB  = "LB"
	PositionRB  = "RB"
	PositionCDM = "CDM"
	PositionCM  = "CM"
	PositionCAM = "CAM"
	PositionLW  = "LW"
	PositionRW  = "RW"
	PositionCF  = "CF"
	PositionST  = "ST"
)

// NeutralScore is the neutral value used when a performance or confidence
// metric is unknown. Unknown is treated as neutral, not penalized.
const NeutralScore = 0.5

// Player represents a full player record as stored.
type Player struct {
	ID                 uuid.UUID  `json:"id"`
	ExternalID         string     `json:"external_id"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	FullName           string     `json:"full_name"`
	DateOfBirth        time.Time  `json:"date_of_birth"`
	Nationality        string     `json:"nationality,omitempty"`
	PrimaryPosition    string     `json:"primary_position"`
	SecondaryPositions []string   `json:"secondary_positions,omitempty"`
	PreferredFoot      string     `json:"preferred_foot,omitempty"`
	HeightCM           *int       `json:"height_cm,omitempty"`
	WeightKG           *int       `json:"weight_kg,omitempty"`
	MarketValueEUR     int64      `json:"market_value_eur"`
	ContractEndDate    *time.Time `json:"contract_end_date,omitempty"`
	ContractStatus     string     `json:"contract_status,omitempty"`
	CurrentClubID      *uuid.UUID `json:"current_club_id,omitempty"`
	IsAvailable        bool       `json:"is_available"`
	CreatedAt          time.Time  `json:"created_at"`
	LastUpdated        time.Time  `json:"last_updated"`
}

// Age returns the player's age in whole years at the given reference time.
func (p *Player) Age(at time.Time) int {
	return AgeAt(p.DateOfBirth, at)
}

// AgeAt computes an age in whole years from a birth date.
func AgeAt(birth, at time.Time) int {
	years := at.Year() - birth.Year()
	if at.YearDay() < birth.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// PlayerCandidate is an immutable snapshot of a player used during one
// ranking run. FormScore and ConsistencyScore come from the current
// season's performance record and default to NeutralScore when absent.
type PlayerCandidate struct {
	ID                 uuid.UUID `json:"id"`
	FullName           string    `json:"full_name"`
	PrimaryPosition    string    `json:"primary_position"`
	SecondaryPositions []string  `json:"secondary_positions,omitempty"`
	Age                int       `json:"age"`
	MarketValueEUR     int64     `json:"market_value_eur"`
	PreferredFoot      string    `json:"preferred_foot,omitempty"`
	IsAvailable        bool      `json:"is_available"`
	FormScore          float64   `json:"form_score"`
	ConsistencyScore   float64   `json:"consistency_score"`
}

// PerformanceRecord holds season-level performance metrics for a player.
type PerformanceRecord struct {
	ID               uuid.UUID `json:"id"`
	PlayerID         uuid.UUID `json:"player_id"`
	Season           string    `json:"season"`
	Appearances      int       `json:"appearances"`
	Goals            int       `json:"goals"`
	Assists          int       `json:"assists"`
	MinutesPlayed    int       `json:"minutes_played"`
	FormScore        float64   `json:"form_score"`
	ConsistencyScore float64   `json:"consistency_score"`
	CreatedAt        time.Time `json:"created_at"`
}
