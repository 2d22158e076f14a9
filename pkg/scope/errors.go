package scope

import "errors"

var (
	// ErrNoTokenProvided is returned when the carrier header is absent.
	ErrNoTokenProvided = errors.New("no token provided")
	// ErrMalformedCarrier is returned when the carrier does not use the Bearer scheme or carries no token.
	ErrMalformedCarrier = errors.New("malformed authorization header")
	// ErrInvalidToken is returned when a token is unparseable, carries a bad signature or foreign claims.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when a correctly signed token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)
