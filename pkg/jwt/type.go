package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	// Now defaults to time.Now.
	Now func() time.Time
}

// Claims represents the JWT claims structure.
type Claims struct {
	SubjectID int64  `json:"subjectId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

// managerImpl implements scope.Manager.
type managerImpl struct {
	secretKey []byte
	issuer    string
	now       func() time.Time
	parser    *jwt.Parser
}
