package account

import "time"

const AccessLevelStandard = "standard"

type ProfileOutput struct {
	SubjectID int64
	Username  string
	Email     string
}

type UserDataOutput struct {
	UserID       int64
	AccessLevel  string
	LastAccessed time.Time
}
