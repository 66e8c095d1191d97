package resume

import "fmt"

// APICallError wraps a failure talking to the LLM provider.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ShapeError means the recovered JSON does not fit the parsed-resume
// shape even loosely.
type ShapeError struct {
	Message string
	Cause   error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("response shape rejected: %s", e.Message)
}

func (e *ShapeError) Unwrap() error {
	return e.Cause
}
