package jwt

import (
	"time"

	"auth-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
)

// New creates a scope.Manager signing and verifying HS256 tokens with cfg.SecretKey.
// An empty secret is a configuration fault and is rejected here, at construction time.
func New(cfg Config) (scope.Manager, error) {
	if cfg.SecretKey == "" {
		return nil, ErrEmptySecret
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(cfg.Now),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		now:       cfg.Now,
		parser:    jwt.NewParser(opts...),
	}, nil
}
