package model

// User is an identity record together with the credential that proves it.
type User struct {
	ID       int64
	Username string
	Password string
	Email    string
}
