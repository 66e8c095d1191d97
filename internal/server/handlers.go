package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/talenthq/talent-hub/internal/fetch"
	"github.com/talenthq/talent-hub/internal/llm"
	"github.com/talenthq/talent-hub/internal/resume"
	"github.com/talenthq/talent-hub/internal/types"
	"github.com/talenthq/talent-hub/internal/upload"
)

// parseResumeResponse is the POST /resume/parse body. Data is always a
// complete form payload; Mock marks the demo payload served when no
// API key is configured, Warning carries a non-fatal pipeline error
// whose fallback payload was still usable.
type parseResumeResponse struct {
	Data    types.ParsedResumeData `json:"data"`
	Mock    bool                   `json:"mock,omitempty"`
	Warning string                 `json:"warning,omitempty"`
}

// handleParseResume accepts a multipart resume upload and runs the
// ingestion pipeline. Invalid uploads and unreadable PDFs are the
// caller's problem (4xx); LLM-side failures degrade to a fallback
// payload so the client can still prefill an empty form.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	uploaded := upload.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}

	parsed, err := s.resume.Parse(r.Context(), uploaded, data)
	if err == nil {
		s.jsonResponse(w, http.StatusOK, parseResumeResponse{Data: parsed})
		return
	}

	// No API key: serve the demo payload so the UI flow still works.
	var notConfigured *llm.NotConfiguredError
	if errors.As(err, &notConfigured) {
		s.jsonResponse(w, http.StatusOK, parseResumeResponse{
			Data: resume.Mock(r.Context()),
			Mock: true,
		})
		return
	}

	status := HTTPStatus(err)
	if status == http.StatusBadGateway || status == http.StatusTooManyRequests {
		// The pipeline already substituted the fallback payload.
		s.jsonResponse(w, http.StatusOK, parseResumeResponse{
			Data:    parsed,
			Warning: err.Error(),
		})
		return
	}

	s.errorResponse(w, status, err.Error())
}

// handleTips serves career tips and course recommendations for a role.
// The tips service never fails; it degrades to static payloads.
func (s *Server) handleTips(w http.ResponseWriter, r *http.Request) {
	role := strings.TrimSpace(r.URL.Query().Get("role"))

	var skills []string
	for _, skill := range strings.Split(r.URL.Query().Get("skills"), ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}

	result := s.tips.Recommend(r.Context(), role, skills)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleLinkPreview fetches a preview card for a candidate's portfolio
// or profile link.
func (s *Server) handleLinkPreview(w http.ResponseWriter, r *http.Request) {
	urlStr := strings.TrimSpace(r.URL.Query().Get("url"))
	if urlStr == "" {
		s.errorResponse(w, http.StatusBadRequest, "url parameter is required")
		return
	}

	preview, err := s.previewer.Preview(r.Context(), urlStr)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) {
			s.errorResponse(w, http.StatusBadGateway, fetchErr.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, preview)
}
