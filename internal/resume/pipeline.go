// Package resume implements the resume ingestion pipeline: uploaded
// file → text → LLM extraction → JSON recovery → normalized form data.
package resume

import (
	"context"

	"github.com/talenthq/talent-hub/internal/extraction"
	"github.com/talenthq/talent-hub/internal/jsonrepair"
	"github.com/talenthq/talent-hub/internal/llm"
	"github.com/talenthq/talent-hub/internal/prompts"
	"github.com/talenthq/talent-hub/internal/types"
	"github.com/talenthq/talent-hub/internal/upload"
)

// Service runs the ingestion pipeline. A nil client means no API key
// is configured; Parse then fails fast with zero network calls and
// callers may serve the demo payload instead.
type Service struct {
	extractor *extraction.Extractor
	client    llm.Client
}

// NewService creates the pipeline service. client may be nil.
func NewService(extractor *extraction.Extractor, client llm.Client) *Service {
	return &Service{extractor: extractor, client: client}
}

// Configured reports whether an LLM client is available.
func (s *Service) Configured() bool {
	return s.client != nil
}

// Parse runs one upload through the full pipeline. Steps run strictly
// in sequence and stop at the first terminal failure; a failure after
// the remote call returns the minimal fallback payload alongside the
// error so the caller can still prefill an empty form.
func (s *Service) Parse(ctx context.Context, file upload.File, data []byte) (types.ParsedResumeData, error) {
	kind, err := upload.Validate(file)
	if err != nil {
		return Fallback(), err
	}

	text, err := s.extractor.Extract(ctx, data, kind)
	if err != nil {
		return Fallback(), err
	}

	if s.client == nil {
		return Fallback(), &llm.NotConfiguredError{}
	}

	system, user := prompts.ResumePrompt(text)
	response, err := s.client.Complete(ctx, system, user)
	if err != nil {
		return Fallback(), &APICallError{Message: "resume extraction call failed", Cause: err}
	}

	raw, err := jsonrepair.Object(response)
	if err != nil {
		return Fallback(), err
	}
	if err := checkShape(raw); err != nil {
		return Fallback(), err
	}

	return Normalize(raw), nil
}
