package authentication

import "auth-srv/internal/model"

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token string
	User  model.User
}
