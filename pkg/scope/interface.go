package scope

// Manager issues and verifies signed session tokens.
// Implementations are stateless and safe for concurrent use.
//
//go:generate mockery --name Manager
type Manager interface {
	// Issue signs claims into a token valid for TokenExpirationDuration from now.
	Issue(claims Claims) (string, error)
	// Verify checks token and returns its payload. Failures wrap ErrInvalidToken or ErrTokenExpired.
	Verify(token string) (Payload, error)
}
