package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sportify/transfer-scout/internal/engine"
	"github.com/sportify/transfer-scout/internal/types"
)

// recommendationTTLExtension is how far feedback pushes out a
// recommendation's expiry.
const recommendationTTLExtension = 7 * 24 * time.Hour

// generateRequest is the body for POST /api/recommendations.
type generateRequest struct {
	ClubID uuid.UUID `json:"club_id"`
	TopN   int       `json:"top_n,omitempty"`
}

// handleGenerateRecommendations runs a fresh ranking for a club's
// active need profile.
func (s *Server) handleGenerateRecommendations(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.ClubID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "club_id is required")
		return
	}

	found, err := s.db.ClubNeedProfile(r.Context(), req.ClubID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	need, err := requireNeedProfile(found, req.ClubID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	recs, err := s.engine.Generate(r.Context(), need, req.TopN)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, recommendationsPayload(req.ClubID, recs))
}

// requireNeedProfile converts an absent profile into the typed
// not-found error so status mapping stays in one place.
func requireNeedProfile(need *types.ClubNeedProfile, clubID uuid.UUID) (*types.ClubNeedProfile, error) {
	if need == nil {
		return nil, &engine.NeedProfileNotFoundError{ClubID: clubID}
	}
	return need, nil
}

// recommendationsPayload is the response envelope shared by the
// generate and cached-read endpoints.
func recommendationsPayload(clubID uuid.UUID, recs []types.Recommendation) map[string]any {
	return map[string]any{
		"club_id":         clubID,
		"recommendations": recs,
		"count":           len(recs),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	}
}

// handleGetRecommendations returns a club's current live
// recommendations without recomputing them.
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	clubID, ok := s.pathUUID(w, r, "club_id")
	if !ok {
		return
	}
	limit := parseQueryInt(r, "limit", 20, 100)

	recs, err := s.db.CurrentRecommendations(r.Context(), clubID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, recommendationsPayload(clubID, recs))
}
