package types

// ParsedResumeData is the transient result of the resume ingestion
// pipeline. It is produced once per upload, handed to the client for
// form prefill, and never persisted. Every field is optional; the
// normalizer guarantees zero values rather than nils.
type ParsedResumeData struct {
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Links           []string `json:"links"`
	YearsExperience int      `json:"years_experience"`
	Skills          []string `json:"skills"`
	Bio             string   `json:"bio"`
	Experience      []string `json:"experience"`
	Education       []string `json:"education"`
	Certifications  []string `json:"certifications"`
}

// EmptyParsedResume returns a ParsedResumeData with all slices
// initialized. Callers can rely on non-nil arrays in JSON output.
func EmptyParsedResume() ParsedResumeData {
	return ParsedResumeData{
		Links:          []string{},
		Skills:         []string{},
		Experience:     []string{},
		Education:      []string{},
		Certifications: []string{},
	}
}
