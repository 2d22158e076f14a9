package scope

import (
	"context"
	"fmt"
	"strings"

	"auth-srv/internal/model"
)

// ExtractBearer returns the token carried by an Authorization header value.
func ExtractBearer(header string) (string, error) {
	if header == "" {
		return "", ErrNoTokenProvided
	}
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", ErrMalformedCarrier
	}
	token := header[len(BearerPrefix):]
	if token == "" {
		return "", fmt.Errorf("%w: empty token", ErrMalformedCarrier)
	}
	return token, nil
}

// Authorize decides whether a request carrying header may proceed.
// A nil error means allow, and the payload identifies the caller; otherwise the
// error wraps one of ErrNoTokenProvided, ErrMalformedCarrier, ErrInvalidToken, ErrTokenExpired.
func Authorize(m Manager, header string) (Payload, error) {
	token, err := ExtractBearer(header)
	if err != nil {
		return Payload{}, err
	}
	return m.Verify(token)
}

// NewScope builds model.Scope from Payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		SubjectID: payload.SubjectID,
		Username:  payload.Username,
		Email:     payload.Email,
		TokenID:   payload.TokenID,
		ExpiresAt: payload.ExpiresAt,
	}
}

// SetPayloadToContext attaches Payload to context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, PayloadCtxKey{}, payload)
}

// GetPayloadFromContext returns Payload from context.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(PayloadCtxKey{}).(Payload)
	return payload, ok
}

// GetSubjectIDFromContext returns the subject id of the caller.
func GetSubjectIDFromContext(ctx context.Context) (int64, bool) {
	payload, ok := GetPayloadFromContext(ctx)
	if !ok {
		return 0, false
	}
	return payload.SubjectID, true
}

// SetScopeToContext attaches model.Scope to context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext returns model.Scope from context.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}
