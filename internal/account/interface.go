package account

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Profile(ctx context.Context, sc model.Scope) (ProfileOutput, error)
	UserData(ctx context.Context, sc model.Scope) (UserDataOutput, error)
}
