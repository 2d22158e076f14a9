package static

import (
	"context"

	"auth-srv/internal/model"
	"auth-srv/internal/user/repository"
)

func (r *implRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}
	u, ok := r.users[username]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}
