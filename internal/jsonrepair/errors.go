package jsonrepair

import (
	"fmt"
	"strings"
)

// ParseError is returned when every recovery pass fails. It carries
// cheap diagnostics about the unrecoverable content so operators can
// tell "model returned prose" apart from "model returned almost-JSON".
type ParseError struct {
	ContentLength int
	HasBrace      bool
	HasBracket    bool
	HasFieldNames bool
}

func newParseError(text string) *ParseError {
	hasFields := false
	for _, key := range fragmentKeys {
		if strings.Contains(text, key) {
			hasFields = true
			break
		}
	}
	return &ParseError{
		ContentLength: len(text),
		HasBrace:      strings.Contains(text, "{"),
		HasBracket:    strings.Contains(text, "["),
		HasFieldNames: hasFields,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"no JSON value recovered from response (len=%d, brace=%t, bracket=%t, field_names=%t)",
		e.ContentLength, e.HasBrace, e.HasBracket, e.HasFieldNames,
	)
}
