package resume

import (
	"reflect"
	"testing"

	"github.com/talenthq/talent-hub/internal/types"
)

func TestNormalize_EmptyObjectDefaults(t *testing.T) {
	got := Normalize([]byte(`{}`))
	want := types.EmptyParsedResume()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize({}) = %+v, want fully defaulted struct", got)
	}
	// Slices must be initialized, not nil, so JSON output has arrays.
	if got.Skills == nil || got.Links == nil || got.Experience == nil {
		t.Error("Normalize({}) left nil slices")
	}
}

func TestNormalize_NestedShapePreferred(t *testing.T) {
	raw := `{
		"name": {"first": "Ann", "last": "Chen"},
		"firstName": "Wrong",
		"email": "ann@example.com",
		"phone": "+1 555 010 1234",
		"links": {"github": "https://github.com/annchen", "linkedin": "https://linkedin.com/in/annchen"},
		"experience_years": 7,
		"skills": ["Go", "PostgreSQL"],
		"sections": {
			"bio": "Backend engineer.",
			"experience": ["Senior Engineer, Acme, 2020-2025"],
			"education": ["BSc CS, State University"],
			"certifications": ["CKA"]
		},
		"bio": "legacy bio"
	}`
	got := Normalize([]byte(raw))

	if got.FirstName != "Ann" || got.LastName != "Chen" {
		t.Errorf("name = %q %q, nested keys must win", got.FirstName, got.LastName)
	}
	if got.Bio != "Backend engineer." {
		t.Errorf("bio = %q, sections.bio must win over flat bio", got.Bio)
	}
	if got.YearsExperience != 7 {
		t.Errorf("years = %d", got.YearsExperience)
	}
	// Well-known link keys come out in fixed order.
	wantLinks := []string{"https://linkedin.com/in/annchen", "https://github.com/annchen"}
	if !reflect.DeepEqual(got.Links, wantLinks) {
		t.Errorf("links = %v, want %v", got.Links, wantLinks)
	}
	if len(got.Experience) != 1 || len(got.Education) != 1 || len(got.Certifications) != 1 {
		t.Errorf("sections not mapped: %+v", got)
	}
}

func TestNormalize_LegacyFlatFallback(t *testing.T) {
	raw := `{
		"firstName": "Ben",
		"lastName": "Okafor",
		"yearsExperience": "12",
		"skills": "Go, Kafka , ",
		"bio": "Platform engineer.",
		"experience": ["Engineer, Initech"],
		"linkedin": "https://linkedin.com/in/benokafor"
	}`
	got := Normalize([]byte(raw))

	if got.FirstName != "Ben" || got.LastName != "Okafor" {
		t.Errorf("flat name keys not honored: %q %q", got.FirstName, got.LastName)
	}
	if got.YearsExperience != 12 {
		t.Errorf("numeric string years = %d, want 12", got.YearsExperience)
	}
	if !reflect.DeepEqual(got.Skills, []string{"Go", "Kafka"}) {
		t.Errorf("comma-split skills = %v", got.Skills)
	}
	if !reflect.DeepEqual(got.Links, []string{"https://linkedin.com/in/benokafor"}) {
		t.Errorf("flat link keys = %v", got.Links)
	}
	if got.Bio != "Platform engineer." {
		t.Errorf("bio = %q", got.Bio)
	}
}

func TestNormalize_ObjectEntriesFlattened(t *testing.T) {
	raw := `{
		"sections": {
			"experience": [
				{"role": "Senior Engineer", "company": "Acme", "dates": "2020-2025"},
				{"unknown_a": "X", "unknown_b": "Y"}
			]
		}
	}`
	got := Normalize([]byte(raw))
	want := []string{"Senior Engineer, Acme, 2020-2025", "X, Y"}
	if !reflect.DeepEqual(got.Experience, want) {
		t.Errorf("experience = %v, want %v", got.Experience, want)
	}
}

func TestNormalize_GarbageTolerated(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "hello"},
		{name: "json null", raw: "null"},
		{name: "wrong scalar types", raw: `{"skills": 42, "experience_years": "soon", "links": 7}`},
		{name: "negative years", raw: `{"experience_years": -3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize([]byte(tt.raw))
			if got.YearsExperience != 0 || len(got.Skills) != 0 {
				t.Errorf("Normalize(%q) = %+v, want defaults", tt.raw, got)
			}
		})
	}
}
