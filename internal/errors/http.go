package errors

import "fmt"

// ClassifyHTTPError builds the error for a non-2xx response. The message is
// the body text as received; an empty body yields FallbackMessage.
//
//   - 4xx client errors (except 408 and 429) are irrecoverable
//   - 5xx server errors are recoverable
//   - anything else is treated as recoverable
func ClassifyHTTPError(statusCode int, body string, underlyingErr error) *ClassifiedError {
	msg := body
	if msg == "" {
		msg = FallbackMessage
	}
	return &ClassifiedError{
		Category:   getHTTPErrorCategory(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Message:    msg,
		Underlying: underlyingErr,
	}
}

// getHTTPErrorCategory maps HTTP status codes to error categories.
func getHTTPErrorCategory(statusCode int) ErrorCategory {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}

// NewHTTPError creates a classified error for an HTTP failure of method on
// endpoint.
func NewHTTPError(statusCode int, body, method, endpoint string) *ClassifiedError {
	underlyingErr := fmt.Errorf("%s %s failed: HTTP %d", method, endpoint, statusCode)
	return ClassifyHTTPError(statusCode, body, underlyingErr)
}
