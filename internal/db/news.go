package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sportify/transfer-scout/internal/types"
)

// UpsertArticle stores an article, keyed by its external ID so repeated
// ingestion runs do not duplicate rows. Returns the stored article and
// whether it was newly inserted.
func (db *DB) UpsertArticle(ctx context.Context, a *types.NewsArticle) (*types.NewsArticle, bool, error) {
	var inserted bool
	stored := *a
	err := db.pool.QueryRow(ctx,
		`INSERT INTO news_articles
		 (external_id, title, content, original_language, source_name, source_url, published_at, author)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, NULLIF($8, ''))
		 ON CONFLICT (external_id) DO UPDATE SET title = $2, content = $3
		 RETURNING id, created_at, (xmax = 0)`,
		a.ExternalID, a.Title, a.Content, a.Language, a.SourceName, a.SourceURL, a.PublishedAt, a.Author,
	).Scan(&stored.ID, &stored.CreatedAt, &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("failed to upsert article: %w", err)
	}
	return &stored, inserted, nil
}

// RecentArticles returns articles published after the given time,
// newest first.
func (db *DB) RecentArticles(ctx context.Context, since time.Time, limit int) ([]types.NewsArticle, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, external_id, title, COALESCE(content, ''), original_language,
		        COALESCE(source_name, ''), COALESCE(source_url, ''), published_at,
		        COALESCE(author, ''), created_at
		 FROM news_articles
		 WHERE published_at > $1
		 ORDER BY published_at DESC
		 LIMIT $2`,
		since, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent articles: %w", err)
	}
	defer rows.Close()

	var articles []types.NewsArticle
	for rows.Next() {
		var a types.NewsArticle
		if err := rows.Scan(&a.ID, &a.ExternalID, &a.Title, &a.Content, &a.Language,
			&a.SourceName, &a.SourceURL, &a.PublishedAt, &a.Author, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// CreateExtraction stores the structured extraction for an article.
func (db *DB) CreateExtraction(ctx context.Context, e *types.NewsExtraction) (*types.NewsExtraction, error) {
	entities, err := json.Marshal(e.Entities)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extracted entities: %w", err)
	}
	created := *e
	err = db.pool.QueryRow(ctx,
		`INSERT INTO news_extractions
		 (article_id, event_type, confidence_score, extracted_entities, key_facts,
		  evidence_snippet, affected_players, is_rumor, llm_model, processing_time_ms)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, NULLIF($9, ''), $10)
		 RETURNING id, created_at`,
		e.ArticleID, e.EventType, e.ConfidenceScore, entities, e.KeyFacts,
		e.EvidenceSnippet, e.AffectedPlayers, e.IsRumor, e.LLMModel, e.ProcessingTimeMS,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction: %w", err)
	}
	return &created, nil
}

// NewsConfidence returns the average extraction confidence for the
// player over articles published after the given time. The second
// return value is false when no extractions mention the player in the
// window, in which case the caller should treat confidence as neutral.
func (db *DB) NewsConfidence(ctx context.Context, playerID uuid.UUID, since time.Time) (float64, bool, error) {
	var avg *float64
	err := db.pool.QueryRow(ctx,
		`SELECT AVG(ne.confidence_score)
		 FROM news_extractions ne
		 JOIN news_articles na ON ne.article_id = na.id
		 WHERE ne.affected_players @> ARRAY[$1]::uuid[]
		 AND na.published_at > $2`,
		playerID, since,
	).Scan(&avg)
	if err != nil {
		return 0, false, fmt.Errorf("failed to aggregate news confidence: %w", err)
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

// ExtractionsForArticle returns all extractions recorded for an article.
func (db *DB) ExtractionsForArticle(ctx context.Context, articleID uuid.UUID) ([]types.NewsExtraction, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, article_id, event_type, confidence_score, extracted_entities, key_facts,
		        COALESCE(evidence_snippet, ''), affected_players, is_rumor,
		        COALESCE(llm_model, ''), processing_time_ms, created_at
		 FROM news_extractions
		 WHERE article_id = $1
		 ORDER BY created_at DESC`,
		articleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query extractions: %w", err)
	}
	defer rows.Close()

	var extractions []types.NewsExtraction
	for rows.Next() {
		var e types.NewsExtraction
		var entities []byte
		if err := rows.Scan(&e.ID, &e.ArticleID, &e.EventType, &e.ConfidenceScore, &entities,
			&e.KeyFacts, &e.EvidenceSnippet, &e.AffectedPlayers, &e.IsRumor,
			&e.LLMModel, &e.ProcessingTimeMS, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan extraction: %w", err)
		}
		if err := json.Unmarshal(entities, &e.Entities); err != nil {
			return nil, fmt.Errorf("failed to unmarshal extracted entities: %w", err)
		}
		extractions = append(extractions, e)
	}
	return extractions, rows.Err()
}
