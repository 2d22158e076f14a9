package errors

import "net/http"

// HTTPError is an error that knows how it is rendered on the wire:
// the status line, a stable numeric code and a client-facing message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError with the given code, message, and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError returns a generic 401.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       CodeUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewNotFoundHTTPError returns a 404 for unmatched routes.
func NewNotFoundHTTPError() *HTTPError {
	return &HTTPError{
		Code:       CodeNotFound,
		Message:    MessageNotFound,
		StatusCode: http.StatusNotFound,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
