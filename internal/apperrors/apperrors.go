// Package apperrors defines the failure taxonomy surfaced by the HTTP
// boundary. Each stage of the analysis pipeline wraps its failures in one of
// these types so the handler can map them to status codes with errors.As.
package apperrors

import "fmt"

// InputError rejects a request before any work happens: no file attached,
// or extracted text below the minimum length.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func NewInputError(format string, args ...interface{}) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// ExtractionError means the document parser could not process the file.
type ExtractionError struct {
	Message string
	Err     error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// AnalysisError means the external model call failed, returned a non-success
// status, or returned a body that is not a valid SlideResult.
type AnalysisError struct {
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error { return e.Err }

// PersistenceError means a store read or write failed.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PersistenceError) Unwrap() error { return e.Err }
