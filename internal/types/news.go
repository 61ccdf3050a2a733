package types

import (
	"time"

	"github.com/google/uuid"
)

// Extraction event type constants
const (
	EventTransferRumor     = "transfer_rumor"
	EventTransferConfirmed = "transfer_confirmed"
	EventInjury            = "injury"
	EventSuspension        = "suspension"
	EventContractExtension = "contract_extension"
	EventFormChange        = "form_change"
	EventUnknown           = "unknown"
)

// RumorConfidenceCeiling is the input-quality convention for extraction:
// rumor-grade events carry confidence below this value. The scoring
// engine relies on the convention but does not enforce it.
const RumorConfidenceCeiling = 0.7

// NewsArticle is a fetched article prior to extraction.
type NewsArticle struct {
	ID          uuid.UUID `json:"id"`
	ExternalID  string    `json:"external_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Language    string    `json:"original_language"`
	SourceName  string    `json:"source_name"`
	SourceURL   string    `json:"source_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	Author      string    `json:"author,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExtractedEntities are the player and club names found in an article.
type ExtractedEntities struct {
	Players []string `json:"players"`
	Clubs   []string `json:"clubs"`
}

// NewsExtraction is the structured result of running the extraction
// model over one article.
type NewsExtraction struct {
	ID               uuid.UUID         `json:"id"`
	ArticleID        uuid.UUID         `json:"article_id"`
	EventType        string            `json:"event_type"`
	ConfidenceScore  float64           `json:"confidence_score"`
	Entities         ExtractedEntities `json:"extracted_entities"`
	KeyFacts         []string          `json:"key_facts,omitempty"`
	EvidenceSnippet  string            `json:"evidence_snippet,omitempty"`
	AffectedPlayers  []uuid.UUID       `json:"affected_players,omitempty"`
	IsRumor          bool              `json:"is_rumor"`
	LLMModel         string            `json:"llm_model,omitempty"`
	ProcessingTimeMS int64             `json:"processing_time_ms"`
	CreatedAt        time.Time         `json:"created_at"`
}
