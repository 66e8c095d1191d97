package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/talenthq/talent-hub/internal/types"
)

// handleListActivity serves the recent activity feed.
func (s *Server) handleListActivity(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	entries, err := s.db.ListActivity(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"activity": entries, "count": len(entries)})
}

// handleGetPreferences fetches a user's UI preferences. Absent rows
// come back as defaults, never 404.
func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "user_id")
	if !ok {
		return
	}
	prefs, err := s.db.GetPreferences(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, prefs)
}

// handleSavePreferences upserts a user's UI preferences.
func (s *Server) handleSavePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.pathUUID(w, r, "user_id")
	if !ok {
		return
	}

	var prefs types.UserPreference
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	prefs.UserID = userID

	if err := s.db.SavePreferences(r.Context(), &prefs); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, prefs)
}

// createSkillRequest is the POST /skills body.
type createSkillRequest struct {
	Name     string     `json:"name"`
	Category string     `json:"category,omitempty"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// handleListSkills serves the skill taxonomy.
func (s *Server) handleListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.db.ListSkills(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"skills": skills, "count": len(skills)})
}

// handleCreateSkill adds a skill taxonomy entry.
func (s *Server) handleCreateSkill(w http.ResponseWriter, r *http.Request) {
	var req createSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		s.errorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	skill, err := s.db.CreateSkill(r.Context(), req.Name, req.Category, req.ParentID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, skill)
}
