package model

import "time"

// Scope is the authenticated caller as seen by usecases.
type Scope struct {
	SubjectID int64     `json:"subject_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	TokenID   string    `json:"jti"`
	ExpiresAt time.Time `json:"expires_at"`
}
