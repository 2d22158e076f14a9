package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"auth-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// claimFailures are validation errors that make a token foreign rather than merely old.
var claimFailures = []error{
	jwt.ErrTokenMalformed,
	jwt.ErrTokenUnverifiable,
	jwt.ErrTokenSignatureInvalid,
	jwt.ErrTokenInvalidIssuer,
	jwt.ErrTokenRequiredClaimMissing,
	jwt.ErrTokenNotValidYet,
	jwt.ErrTokenUsedBeforeIssued,
}

// Issue generates a new HS256 token for claims.
func (m *managerImpl) Issue(c scope.Claims) (string, error) {
	// iat is whole seconds on the wire; exp shares that base so the window is exact.
	now := m.now().Truncate(time.Second)
	claims := Claims{
		SubjectID: c.SubjectID,
		Username:  c.Username,
		Email:     c.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   strconv.FormatInt(c.SubjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(scope.TokenExpirationDuration)),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks signature, algorithm, issuer and expiry, in that order.
func (m *managerImpl) Verify(tokenString string) (scope.Payload, error) {
	if tokenString == "" {
		return scope.Payload{}, fmt.Errorf("%w: token is empty", scope.ErrInvalidToken)
	}

	claims := &Claims{}
	token, err := m.parser.ParseWithClaims(tokenString, claims, m.keyFunc)
	if err != nil {
		return scope.Payload{}, classify(err)
	}
	if !token.Valid {
		return scope.Payload{}, fmt.Errorf("%w: token is not valid", scope.ErrInvalidToken)
	}

	return claims.payload(), nil
}

func (m *managerImpl) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return m.secretKey, nil
}

// classify maps a parser error onto the scope taxonomy. The parser checks the
// signature before any claim, so an expiry error always belongs to an authentic token.
func classify(err error) error {
	for _, target := range claimFailures {
		if errors.Is(err, target) {
			return fmt.Errorf("%w: %v", scope.ErrInvalidToken, err)
		}
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		return fmt.Errorf("%w: %v", scope.ErrTokenExpired, err)
	}
	return fmt.Errorf("%w: %v", scope.ErrInvalidToken, err)
}

func (c *Claims) payload() scope.Payload {
	p := scope.Payload{
		Claims: scope.Claims{
			SubjectID: c.SubjectID,
			Username:  c.Username,
			Email:     c.Email,
		},
		TokenID: c.ID,
	}
	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		p.ExpiresAt = c.ExpiresAt.Time
	}
	return p
}
