package scope

import "time"

// Claims identifies the authenticated principal. It is what the issuer signs
// and what the verifier hands back.
type Claims struct {
	SubjectID int64  `json:"subjectId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
}

// Payload is a verified token: the principal plus the token's own metadata.
type Payload struct {
	Claims
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Context key types for payload and scope.
type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
