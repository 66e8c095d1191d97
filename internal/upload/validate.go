// Package upload validates resume files before any extraction or network work.
package upload

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileBytes is the resume upload size cap (10 MB).
const MaxFileBytes = 10 * 1024 * 1024

// Kind identifies a supported resume file format.
type Kind string

// Supported resume formats.
const (
	KindPDF  Kind = "pdf"
	KindText Kind = "txt"
)

// File describes an uploaded file before its content is touched.
type File struct {
	Name        string // original filename
	ContentType string // declared MIME type, may be empty or wrong
	Size        int64  // byte length
}

// Error is a user-facing validation rejection.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validate checks the declared type (falling back to extension sniffing)
// and size, returning the resolved Kind. It performs no I/O and mutates
// no state; a returned error is safe to show to the user verbatim.
func Validate(f File) (Kind, error) {
	kind, ok := resolveKind(f)
	if !ok {
		return "", &Error{Message: "Unsupported file type. Please upload a PDF or plain-text resume."}
	}

	if f.Size > MaxFileBytes {
		return "", &Error{Message: fmt.Sprintf("File is too large (%.1f MB). The limit is 10 MB.", float64(f.Size)/(1024*1024))}
	}

	return kind, nil
}

// resolveKind maps the declared content type to a Kind, sniffing the
// filename extension when the declared type is absent or unrecognized.
func resolveKind(f File) (Kind, bool) {
	ct := strings.ToLower(strings.TrimSpace(f.ContentType))
	// Declared types sometimes carry parameters ("text/plain; charset=utf-8").
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/pdf":
		return KindPDF, true
	case "text/plain":
		return KindText, true
	}

	switch strings.ToLower(filepath.Ext(f.Name)) {
	case ".pdf":
		return KindPDF, true
	case ".txt":
		return KindText, true
	}

	return "", false
}
