package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sportify/transfer-scout/internal/types"
)

// handleCreateFeedback records a club's reaction to a recommendation.
// Feedback on a live recommendation keeps it around longer.
func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	feedback, err := s.db.CreateFeedback(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	if req.RecommendationID != nil {
		extended, err := s.db.ExtendRecommendationExpiry(r.Context(), *req.RecommendationID, recommendationTTLExtension)
		if err != nil {
			log.Printf("Warning: failed to extend recommendation %s expiry: %v", *req.RecommendationID, err)
		} else if extended {
			log.Printf("Extended recommendation %s expiry by %s", *req.RecommendationID, recommendationTTLExtension)
		}
	}

	s.jsonResponse(w, http.StatusCreated, feedback)
}

// handleGetFeedbackHistory returns a club's feedback entries.
func (s *Server) handleGetFeedbackHistory(w http.ResponseWriter, r *http.Request) {
	clubID, ok := s.pathUUID(w, r, "club_id")
	if !ok {
		return
	}
	limit := parseQueryInt(r, "limit", 50, 200)

	history, err := s.db.FeedbackHistory(r.Context(), clubID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"feedback": history,
		"count":    len(history),
	})
}
