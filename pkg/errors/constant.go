package errors

import "net/http"

const (
	// MessageUnauthorized is the default message for 401.
	MessageUnauthorized = "Unauthorized"
	// MessageNotFound is the default message for 404.
	MessageNotFound = "Route not found"
)

const (
	CodeUnauthorized = http.StatusUnauthorized
	CodeNotFound     = http.StatusNotFound
)
