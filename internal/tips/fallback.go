package tips

import (
	"context"
	"time"

	"github.com/talenthq/talent-hub/internal/types"
)

// MockDelay simulates remote latency when serving the demo payload.
const MockDelay = 800 * time.Millisecond

// Fallback returns the minimal static payload used when the remote
// call or JSON recovery fails: one generic pointer so the tips panel
// is never empty. Deliberately distinct from the demo payload below.
func Fallback(role string) types.CareerTips {
	return types.CareerTips{
		Role: role,
		Tip:  "Course suggestions are unavailable right now; try again in a few minutes.",
		Courses: []types.CourseRecommendation{
			{
				ID:       "fallback-1",
				Title:    "Browse the course catalog",
				Provider: "Coursera",
				URL:      "https://www.coursera.org/browse",
				Reason:   "A starting point while personalized suggestions are unavailable.",
			},
		},
	}
}

// Mock returns the demo payload served when no API key is configured,
// after an artificial delay so the UI behaves like a real request.
func Mock(ctx context.Context, role string) types.CareerTips {
	select {
	case <-time.After(MockDelay):
	case <-ctx.Done():
	}
	return types.CareerTips{
		Role: role,
		Tip:  "Demo suggestions: configure an API key to get recommendations tailored to this role.",
		Courses: []types.CourseRecommendation{
			{
				ID:       "mock-1",
				Title:    "Learning Go",
				Provider: "O'Reilly",
				URL:      "https://www.oreilly.com/library/view/learning-go-2nd/9781098139285/",
				Skill:    "Go",
				Reason:   "A thorough, practical introduction to idiomatic Go.",
			},
			{
				ID:       "mock-2",
				Title:    "PostgreSQL for Everybody",
				Provider: "Coursera",
				URL:      "https://www.coursera.org/specializations/postgresql-for-everybody",
				Skill:    "PostgreSQL",
				Reason:   "Solid grounding in schema design and SQL.",
			},
			{
				ID:       "mock-3",
				Title:    "Kubernetes for Developers",
				Provider: "Linux Foundation",
				URL:      "https://training.linuxfoundation.org/training/kubernetes-for-developers/",
				Skill:    "Kubernetes",
				Reason:   "Covers deploying and debugging services on Kubernetes.",
			},
			{
				ID:       "mock-4",
				Title:    "Grokking System Design",
				Provider: "Educative",
				URL:      "https://www.educative.io/courses/grokking-the-system-design-interview",
				Skill:    "System design",
				Reason:   "Builds the architecture vocabulary senior roles expect.",
			},
		},
	}
}
