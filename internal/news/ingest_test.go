package news

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportify/transfer-scout/internal/fetch"
	"github.com/sportify/transfer-scout/internal/types"
)

type fakeStore struct {
	articles    []types.NewsArticle
	extractions []types.NewsExtraction
	signals     []types.Signal
	players     map[string]uuid.UUID
	known       map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		players: map[string]uuid.UUID{},
		known:   map[string]bool{},
	}
}

func (s *fakeStore) UpsertArticle(_ context.Context, a *types.NewsArticle) (*types.NewsArticle, bool, error) {
	stored := *a
	stored.ID = uuid.New()
	if s.known[a.ExternalID] {
		return &stored, false, nil
	}
	s.known[a.ExternalID] = true
	s.articles = append(s.articles, stored)
	return &stored, true, nil
}

func (s *fakeStore) CreateExtraction(_ context.Context, e *types.NewsExtraction) (*types.NewsExtraction, error) {
	s.extractions = append(s.extractions, *e)
	return e, nil
}

func (s *fakeStore) FindPlayerIDByName(_ context.Context, name string) (uuid.UUID, error) {
	for known, id := range s.players {
		if strings.Contains(known, name) || strings.Contains(name, known) {
			return id, nil
		}
	}
	return uuid.Nil, nil
}

func (s *fakeStore) CreateSignal(_ context.Context, sig *types.Signal) (*types.Signal, error) {
	s.signals = append(s.signals, *sig)
	return sig, nil
}

type fakeExtractor struct {
	eventType  string
	confidence float64
	players    []string
}

func (f *fakeExtractor) ExtractSignals(_ context.Context, _ *types.NewsArticle) (*types.NewsExtraction, error) {
	return &types.NewsExtraction{
		EventType:       f.eventType,
		ConfidenceScore: f.confidence,
		Entities:        types.ExtractedEntities{Players: f.players},
		IsRumor:         f.eventType == types.EventTransferRumor,
	}, nil
}

func failingFetcher(_ context.Context, url string, _ *fetch.Options) (*fetch.Result, error) {
	return nil, &fetch.Error{URL: url, Message: "connection refused"}
}

func testSource() Source {
	return Source{Name: "Test Wire", URL: "https://news.example.com", Language: "en", HeadlineSelector: "a.headline"}
}

func TestRunOnce_UnreachableSourceFallsBackToMockArticles(t *testing.T) {
	store := newFakeStore()
	ing := NewIngestor(store, &fakeExtractor{eventType: types.EventUnknown}).
		WithSources([]Source{testSource()}).
		WithFetcher(failingFetcher)

	ing.RunOnce(context.Background())

	require.Len(t, store.articles, 3)
	assert.Equal(t, "Test Wire", store.articles[0].SourceName)
	assert.Len(t, store.extractions, 3)
}

func TestRunOnce_ParsesHeadlinesAndFetchesBodies(t *testing.T) {
	index := `<html><body>
		<a class="headline" href="/story/1">Striker injured in training</a>
		<a class="headline" href="/story/2">Club agrees transfer fee</a>
	</body></html>`
	page := `<html><body><article><p>Full story text here.</p></article></body></html>`

	fetcher := func(_ context.Context, url string, _ *fetch.Options) (*fetch.Result, error) {
		if url == "https://news.example.com" {
			return &fetch.Result{URL: url, HTML: index, StatusCode: 200}, nil
		}
		return &fetch.Result{URL: url, HTML: page, StatusCode: 200}, nil
	}

	store := newFakeStore()
	ing := NewIngestor(store, &fakeExtractor{eventType: types.EventUnknown}).
		WithSources([]Source{testSource()}).
		WithFetcher(fetcher)

	ing.RunOnce(context.Background())

	require.Len(t, store.articles, 2)
	assert.Equal(t, "Striker injured in training", store.articles[0].Title)
	assert.Equal(t, "test-wire:https://news.example.com/story/1", store.articles[0].ExternalID)
	assert.Contains(t, store.articles[0].Content, "Full story text")
}

func TestRunOnce_SecondCycleSkipsKnownArticles(t *testing.T) {
	index := `<html><body><a class="headline" href="/story/1">Same headline</a></body></html>`
	page := `<html><body><article><p>Body.</p></article></body></html>`
	fetcher := func(_ context.Context, url string, _ *fetch.Options) (*fetch.Result, error) {
		if url == "https://news.example.com" {
			return &fetch.Result{URL: url, HTML: index, StatusCode: 200}, nil
		}
		return &fetch.Result{URL: url, HTML: page, StatusCode: 200}, nil
	}

	store := newFakeStore()
	ing := NewIngestor(store, &fakeExtractor{eventType: types.EventUnknown}).
		WithSources([]Source{testSource()}).
		WithFetcher(fetcher)

	ing.RunOnce(context.Background())
	ing.RunOnce(context.Background())

	assert.Len(t, store.articles, 1)
	assert.Len(t, store.extractions, 1)
}

func TestProcessArticle_InjuryDerivesExpiringSignal(t *testing.T) {
	store := newFakeStore()
	playerID := uuid.New()
	store.players["Erling Haaland"] = playerID

	ing := NewIngestor(store, &fakeExtractor{
		eventType:  types.EventInjury,
		confidence: 0.9,
		players:    []string{"Erling Haaland"},
	}).WithSources([]Source{testSource()}).WithFetcher(failingFetcher)

	article := &types.NewsArticle{
		ExternalID: "test-1",
		Title:      "Haaland ruled out for 3 weeks",
		Content:    "Hamstring injury confirmed.",
	}
	require.NoError(t, ing.processArticle(context.Background(), article))

	require.Len(t, store.signals, 1)
	sig := store.signals[0]
	assert.Equal(t, playerID, sig.PlayerID)
	assert.Equal(t, types.SignalInjury, sig.Type)
	assert.Equal(t, 0.9, sig.Value)
	assert.False(t, sig.IsRisk)
	require.NotNil(t, sig.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(injurySignalTTL), *sig.ExpiresAt, time.Minute)
	assert.Equal(t, "Haaland ruled out for 3 weeks", sig.Evidence)

	require.Len(t, store.extractions, 1)
	assert.Equal(t, []uuid.UUID{playerID}, store.extractions[0].AffectedPlayers)
}

func TestProcessArticle_RumorDerivesNoSignal(t *testing.T) {
	store := newFakeStore()
	store.players["Moisés Caicedo"] = uuid.New()

	ing := NewIngestor(store, &fakeExtractor{
		eventType:  types.EventTransferRumor,
		confidence: 0.5,
		players:    []string{"Moisés Caicedo"},
	}).WithSources([]Source{testSource()}).WithFetcher(failingFetcher)

	article := &types.NewsArticle{ExternalID: "test-2", Title: "Chelsea close to signing defender"}
	require.NoError(t, ing.processArticle(context.Background(), article))

	assert.Empty(t, store.signals)
	assert.Len(t, store.extractions, 1)
}

func TestProcessArticle_UnknownPlayersDropped(t *testing.T) {
	store := newFakeStore()

	ing := NewIngestor(store, &fakeExtractor{
		eventType:  types.EventInjury,
		confidence: 0.8,
		players:    []string{"Nobody Known"},
	}).WithSources([]Source{testSource()}).WithFetcher(failingFetcher)

	article := &types.NewsArticle{ExternalID: "test-3", Title: "Unknown player injured"}
	require.NoError(t, ing.processArticle(context.Background(), article))

	assert.Empty(t, store.signals)
	require.Len(t, store.extractions, 1)
	assert.Empty(t, store.extractions[0].AffectedPlayers)
}

func TestParseHeadlines_DeduplicatesAndCaps(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		sb.WriteString(fmt.Sprintf(`<a class="headline" href="/story/%d">Story %d</a>`, i, i))
	}
	// Duplicate link
	sb.WriteString(`<a class="headline" href="/story/0">Story 0 again</a>`)
	sb.WriteString("</body></html>")

	headlines, err := ParseHeadlines(sb.String(), testSource())
	require.NoError(t, err)
	assert.Len(t, headlines, headlinesPerSource)
	assert.Equal(t, "Story 0", headlines[0].Title)
	assert.Equal(t, "https://news.example.com/story/0", headlines[0].URL)
}

func TestMockArticles_CoverTheEventSpectrum(t *testing.T) {
	articles := MockArticles(testSource(), time.Now())
	require.Len(t, articles, 3)
	assert.Contains(t, articles[0].Title, "injury")
	assert.Contains(t, articles[1].Title, "signing")
	assert.Contains(t, articles[2].Title, "contract")
}
