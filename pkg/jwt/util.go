package jwt

import (
	"errors"
	"fmt"
)

// MinSecretKeyLen is the shortest secret accepted by CheckSecretStrength (256 bits for HS256).
const MinSecretKeyLen = 32

// ErrEmptySecret is returned by New when no signing secret is configured.
var ErrEmptySecret = errors.New("jwt: secret key cannot be empty")

// CheckSecretStrength reports whether secret is long enough for production use.
func CheckSecretStrength(secret string) error {
	if len(secret) < MinSecretKeyLen {
		return fmt.Errorf("jwt: secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(secret))
	}
	return nil
}
