package account

import "errors"

var ErrUnauthenticated = errors.New("request is not authenticated")
