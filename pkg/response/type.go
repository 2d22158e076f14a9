package response

import "auth-srv/pkg/errors"

// Resp is the body of every error response.
// Error carries the underlying cause and is only filled outside release mode.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Error     string `json:"error,omitempty"`
}

// ErrorMapping translates domain errors into their wire representation.
type ErrorMapping map[error]*errors.HTTPError
