package http

import (
	"net/http"

	"auth-srv/internal/authentication"
	pkgErrors "auth-srv/pkg/errors"
	"auth-srv/pkg/response"
)

var (
	errWrongBody          = pkgErrors.NewHTTPError(40002, "Invalid request body", http.StatusBadRequest)
	errMissingFields      = pkgErrors.NewHTTPError(40001, "Username and password are required", http.StatusBadRequest)
	errInvalidCredentials = pkgErrors.NewHTTPError(40105, "Invalid credentials", http.StatusUnauthorized)
)

var errorMapping = response.ErrorMapping{
	authentication.ErrMissingFields:      errMissingFields,
	authentication.ErrInvalidCredentials: errInvalidCredentials,
}
