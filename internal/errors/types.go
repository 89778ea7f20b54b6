// Package errors classifies failures produced by the work-study client.
// Call-site retry policies use the category to decide whether another
// attempt can succeed.
package errors

import (
	stderrors "errors"
	"fmt"
)

// FallbackMessage is the message reported for a failed response with an
// empty body.
const FallbackMessage = "Something went wrong"

// ErrorCategory determines how errors should be handled by retry logic.
type ErrorCategory int

const (
	// Recoverable errors may succeed on a later attempt.
	// Examples: 500 Internal Server Error, 429 Too Many Requests.
	Recoverable ErrorCategory = iota

	// Irrecoverable errors fail the same way every time.
	// Examples: 401 Unauthorized, 403 Forbidden, 404 Not Found.
	Irrecoverable
)

// String returns a human-readable representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError is a non-2xx response from the backend.
//
// Error returns Message only: the raw response text, or FallbackMessage
// when the body was empty. Pages built on the client show that text to the
// user verbatim, so no status prefix is added.
type ClassifiedError struct {
	Category   ErrorCategory
	StatusCode int    // HTTP status code
	Body       string // raw response body
	Message    string
	Underlying error
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Underlying != nil {
		return e.Underlying.Error()
	}
	return FallbackMessage
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// ValidationError reports input rejected on the client before any request
// was issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsIrrecoverable reports whether err should not be retried. Validation
// errors never succeed on retry.
func IsIrrecoverable(err error) bool {
	var classified *ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.Category == Irrecoverable
	}
	var verr *ValidationError
	return stderrors.As(err, &verr)
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var verr *ValidationError
	return stderrors.As(err, &verr)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// an HTTP failure.
func StatusCode(err error) int {
	var classified *ClassifiedError
	if stderrors.As(err, &classified) {
		return classified.StatusCode
	}
	return 0
}
