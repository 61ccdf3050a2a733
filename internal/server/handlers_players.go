package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sportify/transfer-scout/internal/db"
	"github.com/sportify/transfer-scout/internal/types"
)

// createPlayerRequest is the body for POST /api/players.
type createPlayerRequest struct {
	ExternalID         string     `json:"external_id" validate:"required"`
	FirstName          string     `json:"first_name,omitempty"`
	LastName           string     `json:"last_name,omitempty"`
	FullName           string     `json:"full_name" validate:"required"`
	DateOfBirth        time.Time  `json:"date_of_birth" validate:"required"`
	Nationality        string     `json:"nationality,omitempty"`
	PrimaryPosition    string     `json:"primary_position" validate:"required"`
	SecondaryPositions []string   `json:"secondary_positions,omitempty"`
	PreferredFoot      string     `json:"preferred_foot,omitempty" validate:"omitempty,oneof=left right both"`
	HeightCM           *int       `json:"height_cm,omitempty" validate:"omitempty,min=100,max=250"`
	WeightKG           *int       `json:"weight_kg,omitempty" validate:"omitempty,min=40,max=150"`
	MarketValueEUR     int64      `json:"market_value_eur" validate:"min=0"`
	ContractEndDate    *time.Time `json:"contract_end_date,omitempty"`
	ContractStatus     string     `json:"contract_status,omitempty"`
	CurrentClubID      *uuid.UUID `json:"current_club_id,omitempty"`
}

// handleCreatePlayer registers a new player.
func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validator.New().Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	player, err := s.db.CreatePlayer(r.Context(), &types.Player{
		ExternalID:         req.ExternalID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		FullName:           req.FullName,
		DateOfBirth:        req.DateOfBirth,
		Nationality:        req.Nationality,
		PrimaryPosition:    req.PrimaryPosition,
		SecondaryPositions: req.SecondaryPositions,
		PreferredFoot:      req.PreferredFoot,
		HeightCM:           req.HeightCM,
		WeightKG:           req.WeightKG,
		MarketValueEUR:     req.MarketValueEUR,
		ContractEndDate:    req.ContractEndDate,
		ContractStatus:     req.ContractStatus,
		CurrentClubID:      req.CurrentClubID,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, player)
}

// handleGetPlayer retrieves a player by ID.
func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	player, err := s.db.GetPlayer(r.Context(), playerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if player == nil {
		s.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, player)
}

// handleUpdatePlayer applies a partial update to a player.
func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var upd db.PlayerUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	player, err := s.db.UpdatePlayer(r.Context(), playerID, upd)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if player == nil {
		s.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, player)
}

// handleSearchPlayers finds available players by position.
func (s *Server) handleSearchPlayers(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")
	if position == "" {
		s.errorResponse(w, http.StatusBadRequest, "position query parameter is required")
		return
	}
	limit := parseQueryInt(r, "limit", 50, 100)

	players, err := s.db.SearchPlayersByPosition(r.Context(), position, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"players": players,
		"count":   len(players),
	})
}

// handleGetPlayerSignals returns a player's recent signals.
func (s *Server) handleGetPlayerSignals(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit := parseQueryInt(r, "limit", 10, 50)

	signals, err := s.db.PlayerSignals(r.Context(), playerID, limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"signals": signals,
		"count":   len(signals),
	})
}

// handleGetPlayerPerformance returns a player's season performance records.
func (s *Server) handleGetPlayerPerformance(w http.ResponseWriter, r *http.Request) {
	playerID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	season := r.URL.Query().Get("season")

	records, err := s.db.PlayerPerformance(r.Context(), playerID, season)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"performance": records,
		"count":       len(records),
	})
}
