package usecase

import (
	"context"

	"auth-srv/internal/account"
	"auth-srv/internal/model"
)

// Profile returns the identity exactly as carried by the verified token.
func (uc *implUsecase) Profile(ctx context.Context, sc model.Scope) (account.ProfileOutput, error) {
	return account.ProfileOutput{
		SubjectID: sc.SubjectID,
		Username:  sc.Username,
		Email:     sc.Email,
	}, nil
}

func (uc *implUsecase) UserData(ctx context.Context, sc model.Scope) (account.UserDataOutput, error) {
	return account.UserDataOutput{
		UserID:       sc.SubjectID,
		AccessLevel:  account.AccessLevelStandard,
		LastAccessed: uc.now().UTC(),
	}, nil
}
