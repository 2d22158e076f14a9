package usecase

import (
	"auth-srv/internal/audit"
	"auth-srv/internal/authentication"
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/log"
	"auth-srv/pkg/scope"
)

type implUsecase struct {
	l       log.Logger
	audit   *audit.SecurityLogger
	repo    repository.Repository
	manager scope.Manager
}

func New(l log.Logger, repo repository.Repository, manager scope.Manager) authentication.UseCase {
	return &implUsecase{
		l:       l,
		audit:   audit.NewSecurityLogger(l),
		repo:    repo,
		manager: manager,
	}
}
