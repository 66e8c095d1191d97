package resume

import (
	"github.com/xeipuuv/gojsonschema"
)

// parsedResumeSchema is a loose shape check applied to recovered LLM
// JSON before normalization. It rejects responses where a present
// field has a hopeless type (e.g. "skills" as an object) while leaving
// everything optional; the normalizer handles the rest.
const parsedResumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "name": {"type": ["object", "string"]},
    "firstName": {"type": "string"},
    "lastName": {"type": "string"},
    "email": {"type": "string"},
    "phone": {"type": "string"},
    "links": {"type": ["object", "array"]},
    "experience_years": {"type": ["number", "string"]},
    "yearsExperience": {"type": ["number", "string"]},
    "skills": {"type": ["array", "string"]},
    "sections": {"type": "object"},
    "bio": {"type": "string"},
    "experience": {"type": ["array", "string"]},
    "education": {"type": ["array", "string"]},
    "certifications": {"type": ["array", "string"]}
  }
}`

// checkShape validates recovered JSON against the parsed-resume schema.
func checkShape(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(parsedResumeSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &ShapeError{Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	return &ShapeError{
		Message: first.Field() + ": " + first.Description(),
	}
}
