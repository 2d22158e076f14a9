package scope

import "time"

const (
	// AuthorizationHeader is the request header carrying the token.
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the exact, case-sensitive scheme prefix of the carrier.
	BearerPrefix = "Bearer "

	// TokenExpirationDuration is the validity window of an issued token. It is
	// counted from the issuance instant floored to the second, which is the iat
	// claim, so a token expires exactly at iat+1h.
	TokenExpirationDuration = time.Hour
)
