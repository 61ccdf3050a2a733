package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportify/transfer-scout/internal/engine"
	"github.com/sportify/transfer-scout/internal/types"
)

func TestParseQueryInt(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{name: "missing uses default", query: "", expected: 20},
		{name: "valid value", query: "limit=5", expected: 5},
		{name: "non-numeric uses default", query: "limit=abc", expected: 20},
		{name: "negative uses default", query: "limit=-3", expected: 20},
		{name: "over max clamps", query: "limit=500", expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/players/search?"+tt.query, nil)
			assert.Equal(t, tt.expected, parseQueryInt(r, "limit", 20, 100))
		})
	}
}

func TestHandleGenerateRecommendations_InvalidBody(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/recommendations", strings.NewReader("not json"))

	s.handleGenerateRecommendations(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestHandleGenerateRecommendations_MissingClubID(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/recommendations", strings.NewReader("{}"))

	s.handleGenerateRecommendations(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "club_id is required")
}

func TestHandleCreatePlayer_ValidationFailure(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	// Missing full_name, primary_position, date_of_birth
	r := httptest.NewRequest("POST", "/api/players", strings.NewReader(`{"external_id": "p-1"}`))

	s.handleCreatePlayer(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
}

func TestHandleCreateFeedback_UnknownFeedbackType(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	body := `{
		"club_id": "7b0d61b5-57c0-4b68-b0cb-86b0f683c0b5",
		"player_id": "0f8a31f2-4c43-4f29-9b77-64be62cf25eb",
		"feedback_type": "lukewarm"
	}`
	r := httptest.NewRequest("POST", "/api/feedback", strings.NewReader(body))

	s.handleCreateFeedback(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Validation failed")
}

func TestHandleTriggerIngest_NotConfigured(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/news/ingest", nil)

	s.handleTriggerIngest(w, r)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestHandleSearchPlayers_MissingPosition(t *testing.T) {
	s := &Server{}
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/players/search", nil)

	s.handleSearchPlayers(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "position query parameter is required")
}

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	s := &Server{}
	handler := s.withCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler should not run for OPTIONS")
	}))

	w := httptest.NewRecorder()
	r := httptest.NewRequest("OPTIONS", "/api/players", nil)
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecommendationsPayload_IncludesTimestamp(t *testing.T) {
	clubID := uuid.New()
	recs := []types.Recommendation{
		{ID: uuid.New(), ClubID: clubID, RankPosition: 1, FinalScore: 0.7},
		{ID: uuid.New(), ClubID: clubID, RankPosition: 2, FinalScore: 0.5},
	}

	payload := recommendationsPayload(clubID, recs)

	assert.Equal(t, clubID, payload["club_id"])
	assert.Equal(t, 2, payload["count"])
	assert.Equal(t, recs, payload["recommendations"])

	ts, ok := payload["timestamp"].(string)
	require.True(t, ok, "timestamp must be present")
	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestRecommendationsPayload_EmptyList(t *testing.T) {
	payload := recommendationsPayload(uuid.New(), nil)

	assert.Equal(t, 0, payload["count"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestRequireNeedProfile_NilYieldsTypedNotFound(t *testing.T) {
	clubID := uuid.New()

	need, err := requireNeedProfile(nil, clubID)

	assert.Nil(t, need)
	var notFound *engine.NeedProfileNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, clubID, notFound.ClubID)
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestRequireNeedProfile_PassesThroughProfile(t *testing.T) {
	need := &types.ClubNeedProfile{ID: uuid.New(), ClubID: uuid.New()}

	got, err := requireNeedProfile(need, need.ClubID)

	require.NoError(t, err)
	assert.Same(t, need, got)
}
