package http

import (
	"auth-srv/internal/account"
	pkgErrors "auth-srv/pkg/errors"
	"auth-srv/pkg/response"
)

var errorMapping = response.ErrorMapping{
	account.ErrUnauthenticated: pkgErrors.NewUnauthorizedHTTPError(),
}
