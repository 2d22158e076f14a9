package http

import "auth-srv/internal/authentication"

const messageLoginSuccess = "Login successful"

type loginReq struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
}

func (r loginReq) toInput() authentication.LoginInput {
	return authentication.LoginInput{
		Username: r.Username,
		Password: r.Password,
	}
}

type loginResp struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token"`
}

func (h Handler) newLoginResp(o authentication.LoginOutput) loginResp {
	return loginResp{
		Message: messageLoginSuccess,
		Token:   o.Token,
	}
}
