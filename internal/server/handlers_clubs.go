package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sportify/transfer-scout/internal/types"
)

// createClubRequest is the body for POST /api/clubs.
type createClubRequest struct {
	ExternalID      string `json:"external_id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Country         string `json:"country,omitempty"`
	League          string `json:"league,omitempty"`
	FoundedYear     *int   `json:"founded_year,omitempty" validate:"omitempty,min=1800,max=2100"`
	StadiumName     string `json:"stadium_name,omitempty"`
	OfficialWebsite string `json:"official_website,omitempty" validate:"omitempty,url"`
}

// handleCreateClub registers a new club.
func (s *Server) handleCreateClub(w http.ResponseWriter, r *http.Request) {
	var req createClubRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validator.New().Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	club, err := s.db.CreateClub(r.Context(), &types.Club{
		ExternalID:      req.ExternalID,
		Name:            req.Name,
		Country:         req.Country,
		League:          req.League,
		FoundedYear:     req.FoundedYear,
		StadiumName:     req.StadiumName,
		OfficialWebsite: req.OfficialWebsite,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, club)
}

// handleListClubs lists active clubs, optionally filtered by league.
func (s *Server) handleListClubs(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")

	clubs, err := s.db.ListClubs(r.Context(), league)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"clubs": clubs,
		"count": len(clubs),
	})
}

// handleGetClub retrieves a club by ID.
func (s *Server) handleGetClub(w http.ResponseWriter, r *http.Request) {
	clubID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	club, err := s.db.GetClub(r.Context(), clubID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if club == nil {
		s.errorResponse(w, http.StatusNotFound, "Club not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, club)
}

// handleListClubPlayers lists the players at a club.
func (s *Server) handleListClubPlayers(w http.ResponseWriter, r *http.Request) {
	clubID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	players, err := s.db.ListPlayersByClub(r.Context(), clubID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"players": players,
		"count":   len(players),
	})
}

// handleUpsertClubNeeds creates or replaces the club's need profile.
func (s *Server) handleUpsertClubNeeds(w http.ResponseWriter, r *http.Request) {
	clubID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.ClubNeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	club, err := s.db.GetClub(r.Context(), clubID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if club == nil {
		s.errorResponse(w, http.StatusNotFound, "Club not found")
		return
	}

	need, err := s.db.UpsertNeedProfile(r.Context(), clubID, &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, need)
}

// handleGetClubNeeds returns the club's active need profile.
func (s *Server) handleGetClubNeeds(w http.ResponseWriter, r *http.Request) {
	clubID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := s.db.ClubNeedProfile(r.Context(), clubID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	need, err := requireNeedProfile(found, clubID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, need)
}
