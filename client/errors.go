package client

import (
	"errors"
	"net/http"

	apierrors "github.com/Pavan19102006/Jagadeesh-project/internal/errors"
)

// APIError is a non-2xx response. Its Error() is the response text, or
// FallbackMessage when the body was empty.
type APIError = apierrors.ClassifiedError

// ValidationError reports input rejected before any request was sent.
type ValidationError = apierrors.ValidationError

// FallbackMessage is the error text for a failed response with no body.
const FallbackMessage = apierrors.FallbackMessage

// IsStatus reports whether err is an *APIError with the given status.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// IsNotFound reports a 404 response.
func IsNotFound(err error) bool { return IsStatus(err, http.StatusNotFound) }

// IsUnauthorized reports a 401 response.
func IsUnauthorized(err error) bool { return IsStatus(err, http.StatusUnauthorized) }

// IsValidation reports a client-side validation failure.
func IsValidation(err error) bool { return apierrors.IsValidation(err) }

// IsRetryable reports whether another attempt could succeed: transport
// failures and 408, 429 and 5xx responses.
func IsRetryable(err error) bool {
	return err != nil && !apierrors.IsIrrecoverable(err)
}
