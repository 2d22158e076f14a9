package authentication

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login checks the credential and, on a match, issues a session token for its identity.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
