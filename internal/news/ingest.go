package news

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/sportify/transfer-scout/internal/fetch"
	"github.com/sportify/transfer-scout/internal/types"
)

// Signal expiry windows for signals derived from extractions.
const (
	injurySignalTTL     = 21 * 24 * time.Hour
	suspensionSignalTTL = 14 * 24 * time.Hour
)

// Store is the persistence surface the ingestor needs.
type Store interface {
	UpsertArticle(ctx context.Context, a *types.NewsArticle) (*types.NewsArticle, bool, error)
	CreateExtraction(ctx context.Context, e *types.NewsExtraction) (*types.NewsExtraction, error)
	FindPlayerIDByName(ctx context.Context, name string) (uuid.UUID, error)
	CreateSignal(ctx context.Context, s *types.Signal) (*types.Signal, error)
}

// Extractor turns one article into a structured extraction.
type Extractor interface {
	ExtractSignals(ctx context.Context, article *types.NewsArticle) (*types.NewsExtraction, error)
}

// Fetcher retrieves a URL. It matches fetch.URL and exists so tests can
// substitute canned pages.
type Fetcher func(ctx context.Context, url string, opts *fetch.Options) (*fetch.Result, error)

// Ingestor runs the fetch, extract, persist cycle over news sources.
type Ingestor struct {
	store     Store
	extractor Extractor
	sources   []Source
	fetcher   Fetcher
	now       func() time.Time
}

// NewIngestor creates an ingestor over the default sources.
func NewIngestor(store Store, extractor Extractor) *Ingestor {
	return &Ingestor{
		store:     store,
		extractor: extractor,
		sources:   DefaultSources(),
		fetcher:   fetch.URL,
		now:       time.Now,
	}
}

// WithSources replaces the source list.
func (in *Ingestor) WithSources(sources []Source) *Ingestor {
	in.sources = sources
	return in
}

// WithFetcher replaces the URL fetcher.
func (in *Ingestor) WithFetcher(f Fetcher) *Ingestor {
	in.fetcher = f
	return in
}

// Start runs ingestion immediately and then on the given interval until
// the context is cancelled.
func (in *Ingestor) Start(ctx context.Context, interval time.Duration) {
	log.Printf("News ingestion started (interval: %s)", interval)
	in.RunOnce(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("News ingestion stopped: %v", ctx.Err())
			return
		case <-ticker.C:
			in.RunOnce(ctx)
		}
	}
}

// RunOnce ingests from every source. A failing source is logged and
// skipped, never fatal to the cycle.
func (in *Ingestor) RunOnce(ctx context.Context) {
	for _, source := range in.sources {
		if err := in.ingestSource(ctx, source); err != nil {
			log.Printf("Warning: failed to ingest from %s: %v", source.Name, err)
		}
	}
	log.Printf("News ingestion cycle completed")
}

func (in *Ingestor) ingestSource(ctx context.Context, source Source) error {
	log.Printf("Ingesting from %s...", source.Name)

	articles := in.fetchArticles(ctx, source)
	processed := 0
	for i := range articles {
		if err := in.processArticle(ctx, &articles[i]); err != nil {
			log.Printf("Warning: failed to process article %q: %v", articles[i].Title, err)
			continue
		}
		processed++
	}

	log.Printf("%s: ingested %d of %d articles", source.Name, processed, len(articles))
	return nil
}

// fetchArticles pulls articles from a source's index page, falling back
// to mock articles when the source is unreachable or yields nothing.
func (in *Ingestor) fetchArticles(ctx context.Context, source Source) []types.NewsArticle {
	result, err := in.fetcher(ctx, source.URL, nil)
	if err != nil {
		log.Printf("Warning: failed to fetch from %s: %v", source.URL, err)
		return MockArticles(source, in.now())
	}

	headlines, err := ParseHeadlines(result.HTML, source)
	if err != nil || len(headlines) == 0 {
		log.Printf("Warning: no headlines parsed from %s, using fallback articles", source.Name)
		return MockArticles(source, in.now())
	}

	var articles []types.NewsArticle
	for _, h := range headlines {
		page, err := in.fetcher(ctx, h.URL, nil)
		if err != nil {
			log.Printf("Warning: failed to fetch article %s: %v", h.URL, err)
			continue
		}
		content, err := fetch.ExtractMainText(page.HTML, fetch.NewsArticleSelectors())
		if err != nil || content == "" {
			continue
		}
		articles = append(articles, types.NewsArticle{
			ExternalID:  externalID(source, h.URL),
			Title:       h.Title,
			Content:     content,
			Language:    source.Language,
			SourceName:  source.Name,
			SourceURL:   h.URL,
			PublishedAt: in.now(),
		})
	}
	if len(articles) == 0 {
		return MockArticles(source, in.now())
	}
	return articles
}

// processArticle stores one article, runs extraction, resolves affected
// players, and derives availability signals.
func (in *Ingestor) processArticle(ctx context.Context, article *types.NewsArticle) error {
	stored, inserted, err := in.store.UpsertArticle(ctx, article)
	if err != nil {
		return fmt.Errorf("storing article: %w", err)
	}
	if !inserted {
		// Already extracted on a prior cycle.
		return nil
	}

	extraction, err := in.extractor.ExtractSignals(ctx, stored)
	if err != nil {
		return fmt.Errorf("extracting signals: %w", err)
	}
	extraction.ArticleID = stored.ID
	extraction.AffectedPlayers = in.resolvePlayers(ctx, extraction.Entities.Players)

	if _, err := in.store.CreateExtraction(ctx, extraction); err != nil {
		return fmt.Errorf("storing extraction: %w", err)
	}

	in.deriveSignals(ctx, stored, extraction)
	return nil
}

// resolvePlayers maps extracted player names to known player IDs.
// Unknown names are dropped.
func (in *Ingestor) resolvePlayers(ctx context.Context, names []string) []uuid.UUID {
	var ids []uuid.UUID
	for _, name := range names {
		id, err := in.store.FindPlayerIDByName(ctx, name)
		if err != nil {
			log.Printf("Warning: failed to resolve player %q: %v", name, err)
			continue
		}
		if id != uuid.Nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// deriveSignals writes availability signals for extractions that keep a
// player off the pitch. Rumors are not signals: their uncertainty is
// already carried by the extraction confidence.
func (in *Ingestor) deriveSignals(ctx context.Context, article *types.NewsArticle, extraction *types.NewsExtraction) {
	var signalType string
	var ttl time.Duration

	switch extraction.EventType {
	case types.EventInjury:
		signalType = types.SignalInjury
		ttl = injurySignalTTL
	case types.EventSuspension:
		signalType = types.SignalSuspension
		ttl = suspensionSignalTTL
	default:
		return
	}

	for _, playerID := range extraction.AffectedPlayers {
		expires := in.now().Add(ttl)
		signal := &types.Signal{
			PlayerID:  playerID,
			Type:      signalType,
			Value:     extraction.ConfidenceScore,
			ExpiresAt: &expires,
			Evidence:  article.Title,
		}
		if _, err := in.store.CreateSignal(ctx, signal); err != nil {
			log.Printf("Warning: failed to create %s signal for player %s: %v", signalType, playerID, err)
		}
	}
}
