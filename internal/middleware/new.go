package middleware

import (
	"auth-srv/internal/audit"
	"auth-srv/pkg/log"
	"auth-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	audit      *audit.SecurityLogger
	jwtManager scope.Manager
}

func New(l log.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		audit:      audit.NewSecurityLogger(l),
		jwtManager: jwtManager,
	}
}
