package server

import (
	"net/http"
	"time"
)

// handleTriggerIngest runs one news ingestion cycle on demand.
func (s *Server) handleTriggerIngest(w http.ResponseWriter, r *http.Request) {
	if s.ingestor == nil {
		s.errorResponse(w, http.StatusServiceUnavailable,
			"News ingestion is not configured. Set GEMINI_API_KEY to enable it.")
		return
	}

	s.ingestor.RunOnce(r.Context())
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "completed"})
}

// handleRecentNews returns articles ingested within the lookback window.
func (s *Server) handleRecentNews(w http.ResponseWriter, r *http.Request) {
	days := parseQueryInt(r, "days", 7, 30)
	limit := parseQueryInt(r, "limit", 50, 200)
	since := time.Now().AddDate(0, 0, -days)

	articles, err := s.db.RecentArticles(r.Context(), since, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"articles": articles,
		"count":    len(articles),
	})
}
