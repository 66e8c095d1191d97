package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/talenthq/talent-hub/internal/server/middleware"
	"github.com/talenthq/talent-hub/internal/types"
)

// optionalUserID returns the user ID from a Bearer token when one is
// present and valid, and uuid.Nil otherwise. Used by endpoints that
// attribute writes but do not require authentication.
func (s *Server) optionalUserID(r *http.Request) uuid.UUID {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return uuid.Nil
	}
	claims, err := s.jwtService.ValidateToken(parts[1])
	if err != nil {
		return uuid.Nil
	}
	return claims.UserID
}

// createMatchRequest is the POST /matches body.
type createMatchRequest struct {
	ProfileID     uuid.UUID `json:"profile_id"`
	OpportunityID uuid.UUID `json:"opportunity_id"`
	Score         int       `json:"score"`
	Explanation   string    `json:"explanation,omitempty"`
}

// handleCreateMatch records a scored profile/opportunity pairing.
func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ProfileID == uuid.Nil || req.OpportunityID == uuid.Nil {
		s.errorResponse(w, http.StatusBadRequest, "profile_id and opportunity_id are required")
		return
	}
	if req.Score < 0 || req.Score > 100 {
		s.errorResponse(w, http.StatusBadRequest, "score must be between 0 and 100")
		return
	}

	match, err := s.db.CreateMatch(r.Context(), req.ProfileID, req.OpportunityID, req.Score, req.Explanation)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, match)
}

// handleGetMatch fetches a single match.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	match, err := s.db.GetMatch(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, match)
}

// handleListMatches lists matches for an opportunity, best first.
func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	matches, err := s.db.ListMatches(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches, "count": len(matches)})
}

// handleMatchFeedback records the authenticated user's verdict on a
// match. Re-submitting replaces the earlier verdict.
func (s *Server) handleMatchFeedback(w http.ResponseWriter, r *http.Request) {
	matchID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.MatchFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	// The match must exist before feedback is attached.
	if _, err := s.db.GetMatch(r.Context(), matchID); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	feedback, err := s.db.SaveMatchFeedback(r.Context(), matchID, userID, req.Helpful, req.Comment)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.db.RecordActivity(r.Context(), userID, "match_feedback", "match", matchID, req.Comment); err != nil {
		// Feedback is already saved; the feed entry is best effort.
		s.jsonResponse(w, http.StatusOK, feedback)
		return
	}
	s.jsonResponse(w, http.StatusOK, feedback)
}

// createAssignmentRequest is the POST /matches/{id}/assign body.
type createAssignmentRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// handleCreateAssignment turns an accepted match into an assignment.
func (s *Server) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	matchID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req createAssignmentRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	match, err := s.db.GetMatch(r.Context(), matchID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	assignment, err := s.db.CreateAssignment(r.Context(), match.ProfileID, match.OpportunityID, req.StartDate, req.EndDate)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, assignment)
}
