package http

import (
	"time"

	"auth-srv/internal/account"
)

const (
	messageProfile  = "Profile retrieved successfully"
	messageUserData = "User data retrieved successfully"
)

type userResp struct {
	SubjectID int64  `json:"subjectId" example:"1"`
	Username  string `json:"username" example:"admin"`
	Email     string `json:"email" example:"admin@example.com"`
}

type profileResp struct {
	Message string   `json:"message"`
	User    userResp `json:"user"`
}

func (h Handler) newProfileResp(o account.ProfileOutput) profileResp {
	return profileResp{
		Message: messageProfile,
		User: userResp{
			SubjectID: o.SubjectID,
			Username:  o.Username,
			Email:     o.Email,
		},
	}
}

type userDataItem struct {
	UserID       int64     `json:"userId" example:"1"`
	AccessLevel  string    `json:"accessLevel" example:"standard"`
	LastAccessed time.Time `json:"lastAccessed"`
}

type userDataResp struct {
	Message string       `json:"message"`
	Data    userDataItem `json:"data"`
}

func (h Handler) newUserDataResp(o account.UserDataOutput) userDataResp {
	return userDataResp{
		Message: messageUserData,
		Data: userDataItem{
			UserID:       o.UserID,
			AccessLevel:  o.AccessLevel,
			LastAccessed: o.LastAccessed,
		},
	}
}
