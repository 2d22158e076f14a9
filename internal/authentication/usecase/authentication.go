package usecase

import (
	"context"
	"crypto/subtle"
	"errors"

	"auth-srv/internal/authentication"
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/scope"
)

func (uc *implUsecase) Login(ctx context.Context, input authentication.LoginInput) (authentication.LoginOutput, error) {
	if input.Username == "" || input.Password == "" {
		return authentication.LoginOutput{}, authentication.ErrMissingFields
	}

	u, err := uc.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.audit.LogLoginFailed(ctx, input.Username, "unknown username")
			return authentication.LoginOutput{}, authentication.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "internal.authentication.usecase.Login.FindByUsername: %v", err)
		return authentication.LoginOutput{}, err
	}

	if subtle.ConstantTimeCompare([]byte(input.Password), []byte(u.Password)) != 1 {
		uc.audit.LogLoginFailed(ctx, input.Username, "password mismatch")
		return authentication.LoginOutput{}, authentication.ErrInvalidCredentials
	}

	token, err := uc.manager.Issue(scope.Claims{
		SubjectID: u.ID,
		Username:  u.Username,
		Email:     u.Email,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.authentication.usecase.Login.Issue: %v", err)
		return authentication.LoginOutput{}, err
	}

	uc.audit.LogLoginSucceeded(ctx, u.Username, u.ID)

	return authentication.LoginOutput{
		Token: token,
		User:  u,
	}, nil
}
