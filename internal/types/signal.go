package types

import (
	"time"

	"github.com/google/uuid"
)

// Signal type constants
const (
	SignalInjury     = "injury"
	SignalSuspension = "suspension"
	SignalRisk       = "risk"
	SignalOther      = "other"
)

// Signal is a typed, time-bounded assertion about a player, sourced from
// news extraction or manual entry. Value is severity/confidence in [0,1].
// Only active, non-expired signals participate in scoring.
type Signal struct {
	ID        uuid.UUID  `json:"id"`
	PlayerID  uuid.UUID  `json:"player_id"`
	Type      string     `json:"signal_type"`
	Value     float64    `json:"signal_value"`
	IsRisk    bool       `json:"is_risk"`
	IsActive  bool       `json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Evidence  string     `json:"evidence,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Expired reports whether the signal has passed its expiry at the given time.
// Signals without an expiry never expire.
func (s *Signal) Expired(at time.Time) bool {
	return s.ExpiresAt != nil && !s.ExpiresAt.After(at)
}

// RiskStats is the aggregate over a player's active risk signals used by
// the risk penalty computation.
type RiskStats struct {
	Count    int     `json:"count"`
	AvgValue float64 `json:"avg_value"`
}
