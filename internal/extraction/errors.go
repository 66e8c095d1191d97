package extraction

import "fmt"

// Failure taxonomy surfaced to the upload flow. Each maps to a distinct
// user-readable message; the UI shows Error() verbatim.

// CorruptPDFError indicates the PDF could not be opened or parsed at all.
type CorruptPDFError struct {
	Cause error
}

func (e *CorruptPDFError) Error() string {
	return "The PDF appears to be invalid or corrupted and could not be read."
}

func (e *CorruptPDFError) Unwrap() error {
	return e.Cause
}

// EncryptedPDFError indicates the PDF is password-protected.
type EncryptedPDFError struct {
	Cause error
}

func (e *EncryptedPDFError) Error() string {
	return "The PDF is password-protected. Please remove the password and try again."
}

func (e *EncryptedPDFError) Unwrap() error {
	return e.Cause
}

// NoTextError indicates an image-based PDF yielded nothing even after OCR.
type NoTextError struct{}

func (e *NoTextError) Error() string {
	return "No readable text could be found in the PDF, even after scanning it as images."
}

// ExtractionError is the generic extraction failure.
type ExtractionError struct {
	Stage string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Text extraction failed during %s: %v", e.Stage, e.Cause)
	}
	return fmt.Sprintf("Text extraction failed during %s.", e.Stage)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
