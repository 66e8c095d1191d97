package resume

import (
	"context"
	"time"

	"github.com/talenthq/talent-hub/internal/types"
)

// MockDelay simulates remote latency when serving the demo payload.
const MockDelay = 800 * time.Millisecond

// Fallback returns the minimal static payload used when the remote
// call or JSON recovery fails: an empty form the user fills by hand.
// Deliberately distinct from the richer demo payload below.
func Fallback() types.ParsedResumeData {
	return types.EmptyParsedResume()
}

// Mock returns the demo payload served when no API key is configured,
// after an artificial delay so the UI behaves like a real parse. The
// delay is cut short if ctx is cancelled.
func Mock(ctx context.Context) types.ParsedResumeData {
	select {
	case <-time.After(MockDelay):
	case <-ctx.Done():
	}
	return types.ParsedResumeData{
		FirstName:       "Jordan",
		LastName:        "Rivera",
		Email:           "jordan.rivera@example.com",
		Phone:           "+1 555 010 7788",
		Links:           []string{"https://www.linkedin.com/in/jordan-rivera-demo", "https://github.com/jordanrivera-demo"},
		YearsExperience: 7,
		Skills:          []string{"Go", "PostgreSQL", "Kubernetes", "gRPC", "React"},
		Bio:             "Backend engineer focused on reliable data platforms and developer tooling.",
		Experience: []string{
			"Senior Backend Engineer, Northwind Labs, 2021-2025",
			"Backend Engineer, Contoso Cloud, 2018-2021",
		},
		Education: []string{
			"BSc Computer Science, State University, 2018",
		},
		Certifications: []string{
			"CKA: Certified Kubernetes Administrator",
		},
	}
}
