package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScoredCandidate annotates a PlayerCandidate with the five component
// scores and the derived final score. It is ephemeral: recomputed on
// every ranking run and never cached across runs.
type ScoredCandidate struct {
	Candidate         PlayerCandidate `json:"candidate"`
	FitScore          float64         `json:"fit_score"`
	PerformanceScore  float64         `json:"performance_score"`
	AvailabilityScore float64         `json:"availability_score"`
	RiskPenalty       float64         `json:"risk_penalty"`
	NewsConfidence    float64         `json:"news_confidence"`
	FinalScore        float64         `json:"final_score"`
}

// StatsEvidence holds the key component scores as rounded percentages
// for display in an explanation.
type StatsEvidence struct {
	FitScore          int `json:"fit_score"`
	PerformanceScore  int `json:"performance_score"`
	AvailabilityScore int `json:"availability_score"`
}

// SignalEvidence is one recent signal included in an explanation for
// traceability.
type SignalEvidence struct {
	Type      string    `json:"type"`
	Evidence  string    `json:"evidence"`
	Timestamp time.Time `json:"timestamp"`
}

// Explanation is the structured, human-readable justification attached
// to a recommendation.
type Explanation struct {
	TopReasons     []string         `json:"top_reasons"`
	StatsEvidence  StatsEvidence    `json:"stats_evidence"`
	RecentSignals  []SignalEvidence `json:"recent_signals,omitempty"`
	RiskIndicators []string         `json:"risk_indicators,omitempty"`
	GeneratedAt    time.Time        `json:"recommendation_timestamp"`
}

// Recommendation is the persisted output of a ranking run for one
// surviving candidate. Rows past ExpiresAt are treated as archived and
// excluded from current views, but never deleted.
type Recommendation struct {
	ID                uuid.UUID   `json:"id"`
	ClubID            uuid.UUID   `json:"club_id"`
	ClubNeedID        uuid.UUID   `json:"club_need_id"`
	PlayerID          uuid.UUID   `json:"player_id"`
	RankPosition      int         `json:"rank_position"`
	FitScore          float64     `json:"fit_score"`
	PerformanceScore  float64     `json:"performance_score"`
	AvailabilityScore float64     `json:"availability_score"`
	RiskPenalty       float64     `json:"risk_penalty"`
	NewsConfidence    float64     `json:"news_confidence"`
	FinalScore        float64     `json:"final_score"`
	Explanation       Explanation `json:"explanation"`
	IsArchived        bool        `json:"is_archived"`
	ExpiresAt         *time.Time  `json:"expires_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`

	// Joined player display fields for the read path
	PlayerName      string `json:"full_name,omitempty"`
	PrimaryPosition string `json:"primary_position,omitempty"`
	PlayerAge       int    `json:"age,omitempty"`
	MarketValueEUR  int64  `json:"market_value_eur,omitempty"`
}

// Feedback type constants
const (
	FeedbackInterested    = "interested"
	FeedbackNotInterested = "not_interested"
	FeedbackContacted     = "contacted"
	FeedbackSigned        = "signed"
)

// Feedback is a club's recorded reaction to a recommendation.
type Feedback struct {
	ID               uuid.UUID  `json:"id"`
	ClubID           uuid.UUID  `json:"club_id"`
	RecommendationID *uuid.UUID `json:"recommendation_id,omitempty"`
	PlayerID         uuid.UUID  `json:"player_id"`
	FeedbackType     string     `json:"feedback_type"`
	Rating           *int       `json:"rating,omitempty"`
	Comment          string     `json:"comment,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`

	// Joined player display fields
	PlayerName      string `json:"full_name,omitempty"`
	PrimaryPosition string `json:"primary_position,omitempty"`
}

// FeedbackRequest is the input for recording feedback against a
// recommendation.
type FeedbackRequest struct {
	ClubID           uuid.UUID  `json:"club_id" validate:"required"`
	PlayerID         uuid.UUID  `json:"player_id" validate:"required"`
	RecommendationID *uuid.UUID `json:"recommendation_id,omitempty"`
	FeedbackType     string     `json:"feedback_type" validate:"required,oneof=interested not_interested contacted signed"`
	Rating           *int       `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment          string     `json:"comment,omitempty"`
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
