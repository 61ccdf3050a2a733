package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Club represents a football club.
type Club struct {
	ID              uuid.UUID `json:"id"`
	ExternalID      string    `json:"external_id"`
	Name            string    `json:"name"`
	Country         string    `json:"country,omitempty"`
	League          string    `json:"league,omitempty"`
	FoundedYear     *int      `json:"founded_year,omitempty"`
	StadiumName     string    `json:"stadium_name,omitempty"`
	OfficialWebsite string    `json:"official_website,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// ClubNeedProfile is a club's stated player-acquisition requirements.
// One active profile exists per club; upserting replaces the prior one.
// BudgetMinEUR is informational only and never enforced in filtering.
type ClubNeedProfile struct {
	ID                uuid.UUID `json:"id"`
	ClubID            uuid.UUID `json:"club_id"`
	PositionsRequired []string  `json:"positions_required"`
	AgeMin            *int      `json:"age_min,omitempty"`
	AgeMax            *int      `json:"age_max,omitempty"`
	BudgetMinEUR      *int64    `json:"budget_min_eur,omitempty"`
	BudgetMaxEUR      *int64    `json:"budget_max_eur,omitempty"`
	PreferredFoot     *string   `json:"preferred_foot,omitempty"`
	TacticalStyle     string    `json:"tactical_style,omitempty"`
	UrgencyLevel      string    `json:"urgency_level,omitempty"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ClubNeedRequest is the club-facing input for creating or replacing a
// need profile.
type ClubNeedRequest struct {
	PositionsRequired []string `json:"positions_required" validate:"required,min=1,dive,required"`
	AgeMin            *int     `json:"age_min,omitempty" validate:"omitempty,min=15,max=50"`
	AgeMax            *int     `json:"age_max,omitempty" validate:"omitempty,min=15,max=50"`
	BudgetMinEUR      *int64   `json:"budget_min_eur,omitempty" validate:"omitempty,min=0"`
	BudgetMaxEUR      *int64   `json:"budget_max_eur,omitempty" validate:"omitempty,min=0"`
	PreferredFoot     *string  `json:"preferred_foot,omitempty" validate:"omitempty,oneof=left right both"`
	TacticalStyle     string   `json:"tactical_style,omitempty"`
	UrgencyLevel      string   `json:"urgency_level,omitempty" validate:"omitempty,oneof=low medium high"`
	Description       string   `json:"description,omitempty"`
}

// Validate checks the request against its tags and the cross-field
// invariants (age_min <= age_max, budget_min <= budget_max).
func (r *ClubNeedRequest) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.AgeMin != nil && r.AgeMax != nil && *r.AgeMin > *r.AgeMax {
		return fmt.Errorf("age_min (%d) must not exceed age_max (%d)", *r.AgeMin, *r.AgeMax)
	}
	if r.BudgetMinEUR != nil && r.BudgetMaxEUR != nil && *r.BudgetMinEUR > *r.BudgetMaxEUR {
		return fmt.Errorf("budget_min_eur (%d) must not exceed budget_max_eur (%d)", *r.BudgetMinEUR, *r.BudgetMaxEUR)
	}
	return nil
}
