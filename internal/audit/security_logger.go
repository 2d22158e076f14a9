package audit

import (
	"context"

	"auth-srv/pkg/log"
)

// SecurityEventType represents the type of security event
type SecurityEventType string

const (
	SecurityEventLoginSucceeded SecurityEventType = "login_succeeded"
	SecurityEventLoginFailed    SecurityEventType = "login_failed"
	SecurityEventTokenRejected  SecurityEventType = "token_rejected"
)

// SecurityLogger logs security-relevant events with a fixed set of structured fields,
// so they can be filtered out of the regular log stream by "security_event".
type SecurityLogger struct {
	l log.Logger
}

func NewSecurityLogger(l log.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}

// LogLoginSucceeded records a token issued to subjectID.
func (sl *SecurityLogger) LogLoginSucceeded(ctx context.Context, username string, subjectID int64) {
	ctx = sl.l.With(ctx, "security_event", string(SecurityEventLoginSucceeded), "username", username, "subject_id", subjectID)
	sl.l.Info(ctx, "SECURITY: Login succeeded")
}

// LogLoginFailed records a rejected credential. The password is never logged.
func (sl *SecurityLogger) LogLoginFailed(ctx context.Context, username, reason string) {
	ctx = sl.l.With(ctx, "security_event", string(SecurityEventLoginFailed), "username", username, "reason", reason)
	sl.l.Warn(ctx, "SECURITY: Login failed")
}

// LogTokenRejected records a request stopped at the gate.
func (sl *SecurityLogger) LogTokenRejected(ctx context.Context, method, path, reason string) {
	ctx = sl.l.With(ctx, "security_event", string(SecurityEventTokenRejected), "method", method, "path", path, "reason", reason)
	sl.l.Warn(ctx, "SECURITY: Token rejected")
}
