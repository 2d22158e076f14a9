package repository

import (
	"context"

	"auth-srv/internal/model"
)

// Repository is the credential store consulted by login.
//
//go:generate mockery --name Repository
type Repository interface {
	// FindByUsername returns ErrNotFound when no identity has that username.
	FindByUsername(ctx context.Context, username string) (model.User, error)
}
