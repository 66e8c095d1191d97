// Package server provides the HTTP REST API for the talent hub.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/talenthq/talent-hub/internal/db"
	"github.com/talenthq/talent-hub/internal/extraction"
	"github.com/talenthq/talent-hub/internal/jsonrepair"
	"github.com/talenthq/talent-hub/internal/llm"
	"github.com/talenthq/talent-hub/internal/resume"
	"github.com/talenthq/talent-hub/internal/upload"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus maps an error to its HTTP status code. Auth errors get
// their conventional codes; pipeline errors distinguish bad input
// (4xx) from upstream LLM trouble (502/503).
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	}

	var notFound *db.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var uploadErr *upload.Error
	if errors.As(err, &uploadErr) {
		return http.StatusBadRequest
	}

	switch {
	case errors.As(err, new(*extraction.CorruptPDFError)),
		errors.As(err, new(*extraction.EncryptedPDFError)),
		errors.As(err, new(*extraction.NoTextError)):
		return http.StatusUnprocessableEntity
	case errors.As(err, new(*llm.NotConfiguredError)):
		return http.StatusServiceUnavailable
	case errors.As(err, new(*llm.QuotaError)):
		return http.StatusTooManyRequests
	case errors.As(err, new(*llm.InvalidKeyError)),
		errors.As(err, new(*llm.NoModelError)),
		errors.As(err, new(*llm.AllModelsFailedError)),
		errors.As(err, new(*resume.APICallError)),
		errors.As(err, new(*resume.ShapeError)),
		errors.As(err, new(*jsonrepair.ParseError)):
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
