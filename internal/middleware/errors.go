package middleware

import (
	"errors"
	"net/http"

	pkgErrors "auth-srv/pkg/errors"
	"auth-srv/pkg/scope"
)

var (
	errNoTokenProvided = pkgErrors.NewHTTPError(40101, "No token provided", http.StatusUnauthorized)
	errInvalidFormat   = pkgErrors.NewHTTPError(40102, "Invalid token format", http.StatusUnauthorized)
	errInvalidToken    = pkgErrors.NewHTTPError(40103, "Invalid token", http.StatusUnauthorized)
	errTokenExpired    = pkgErrors.NewHTTPError(40104, "Token expired", http.StatusUnauthorized)
)

// mapAuthError classifies a gate failure. Anything unrecognized is an invalid token.
func mapAuthError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, scope.ErrNoTokenProvided):
		return errNoTokenProvided
	case errors.Is(err, scope.ErrMalformedCarrier):
		return errInvalidFormat
	case errors.Is(err, scope.ErrTokenExpired):
		return errTokenExpired
	default:
		return errInvalidToken
	}
}
