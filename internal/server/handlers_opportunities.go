package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/talenthq/talent-hub/internal/db"
	"github.com/talenthq/talent-hub/internal/types"
)

// handleListOpportunities lists opportunities with optional filters.
func (s *Server) handleListOpportunities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := db.OpportunityFilters{
		Status: q.Get("status"),
		Role:   q.Get("role"),
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}

	opps, err := s.db.ListOpportunities(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"opportunities": opps, "count": len(opps)})
}

// handleCreateOpportunity creates an opportunity. The creator is
// recorded when the request carries a valid token, but the endpoint
// works unauthenticated too.
func (s *Server) handleCreateOpportunity(w http.ResponseWriter, r *http.Request) {
	var req types.CreateOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	opp, err := s.db.CreateOpportunity(r.Context(), &req, s.optionalUserID(r))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, opp)
}

// handleGetOpportunity fetches a single opportunity.
func (s *Server) handleGetOpportunity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	opp, err := s.db.GetOpportunity(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, opp)
}

// handleUpdateOpportunity overwrites an opportunity's editable fields.
func (s *Server) handleUpdateOpportunity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req types.CreateOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	opp, err := s.db.UpdateOpportunity(r.Context(), id, &req)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, opp)
}

// handleDeleteOpportunity removes an opportunity.
func (s *Server) handleDeleteOpportunity(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := s.db.DeleteOpportunity(r.Context(), id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
