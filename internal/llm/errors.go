package llm

import (
	"fmt"
	"strings"
)

// NotConfiguredError means no API key is set. Callers switch to their
// local mock payloads and make no network calls.
type NotConfiguredError struct{}

func (e *NotConfiguredError) Error() string {
	return "API key not configured"
}

// InvalidKeyError means the provider rejected the key (HTTP 401).
type InvalidKeyError struct{}

func (e *InvalidKeyError) Error() string {
	return "The configured API key was rejected. Check that it is valid and active."
}

// QuotaError means the provider reported exhausted quota or credits
// (HTTP 402/429 or a quota-flavored error body).
type QuotaError struct {
	Detail string
}

func (e *QuotaError) Error() string {
	return "The API quota or credit limit has been reached. Try again later."
}

// NoModelError means no candidate model was available (HTTP 404).
type NoModelError struct{}

func (e *NoModelError) Error() string {
	return "None of the candidate models are available on this provider."
}

// AllModelsFailedError is the generic terminal failure carrying the
// last attempt's error text.
type AllModelsFailedError struct {
	Attempts int
	Last     string
}

func (e *AllModelsFailedError) Error() string {
	return fmt.Sprintf("all %d candidate models failed; last error: %s", e.Attempts, e.Last)
}

var quotaKeywords = []string{"quota", "credit", "payment", "rate limit", "insufficient"}

// classifyFailure maps the last attempt's status code and body onto the
// terminal error taxonomy.
func classifyFailure(attempts, status int, body string) error {
	switch status {
	case 401:
		return &InvalidKeyError{}
	case 402, 429:
		return &QuotaError{Detail: body}
	case 404:
		return &NoModelError{}
	}
	lower := strings.ToLower(body)
	for _, kw := range quotaKeywords {
		if strings.Contains(lower, kw) {
			return &QuotaError{Detail: body}
		}
	}
	return &AllModelsFailedError{Attempts: attempts, Last: body}
}
