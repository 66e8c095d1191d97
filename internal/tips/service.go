// Package tips produces AI career tips and course recommendations for
// a role and skill list, with the same JSON-recovery behavior as the
// resume pipeline and static payloads when the remote side is
// unavailable.
package tips

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/talenthq/talent-hub/internal/jsonrepair"
	"github.com/talenthq/talent-hub/internal/llm"
	"github.com/talenthq/talent-hub/internal/prompts"
	"github.com/talenthq/talent-hub/internal/types"
)

// Service requests course recommendations. A nil client means no API
// key is configured; the demo payload is served with no network calls.
type Service struct {
	client llm.Client
}

// NewService creates the tips service. client may be nil.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Recommend returns career tips for a role. The result degrades
// rather than fails: remote or recovery errors fall back to the
// minimal static payload, and a missing API key serves the richer
// demo payload after an artificial delay.
func (s *Service) Recommend(ctx context.Context, role string, skills []string) types.CareerTips {
	if s.client == nil {
		return Mock(ctx, role)
	}

	system, user := prompts.TipsPrompt(role, skills)
	response, err := s.client.Complete(ctx, system, user)
	if err != nil {
		log.Printf("tips: remote call failed, serving fallback: %v", err)
		return Fallback(role)
	}

	raw, err := jsonrepair.Array(response)
	if err != nil {
		log.Printf("tips: no JSON array recovered, serving fallback: %v", err)
		return Fallback(role)
	}

	courses := decodeCourses(raw)
	if len(courses) == 0 {
		log.Printf("tips: recovered array held no usable entries, serving fallback")
		return Fallback(role)
	}

	return types.CareerTips{
		Role:    role,
		Tip:     tipForRole(role),
		Courses: courses,
	}
}

// decodeCourses maps a recovered JSON array onto course entries.
// Elements are decoded individually so one mistyped entry does not
// sink the rest; entries without a title are dropped and missing IDs
// are filled in.
func decodeCourses(raw []byte) []types.CourseRecommendation {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}

	var kept []types.CourseRecommendation
	for _, item := range items {
		c := types.CourseRecommendation{
			ID:       field(item, "id"),
			Title:    field(item, "title"),
			Provider: field(item, "provider"),
			URL:      field(item, "url"),
			Skill:    field(item, "skill"),
			Reason:   field(item, "reason"),
		}
		if c.Title == "" {
			continue
		}
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		kept = append(kept, c)
		if len(kept) == prompts.DefaultTipsLimit {
			break
		}
	}
	return kept
}

// field reads a key as a trimmed string, stringifying numbers.
func field(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// tipForRole is a short generic nudge shown above the course list.
func tipForRole(role string) string {
	role = strings.TrimSpace(role)
	if role == "" {
		return "Pick one skill to deepen this quarter and build something small with it."
	}
	return "Grow toward the " + role + " role one course at a time; finish one before starting the next."
}
