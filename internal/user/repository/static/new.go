package static

import (
	"auth-srv/internal/model"
	"auth-srv/internal/user/repository"
)

// DemoUser is the single identity this service knows about.
var DemoUser = model.User{
	ID:       1,
	Username: "admin",
	Password: "password123",
	Email:    "admin@example.com",
}

type implRepository struct {
	users map[string]model.User
}

// New returns a read-only in-memory repository holding users.
// With no arguments it holds DemoUser only.
func New(users ...model.User) repository.Repository {
	if len(users) == 0 {
		users = []model.User{DemoUser}
	}
	byName := make(map[string]model.User, len(users))
	for _, u := range users {
		byName[u.Username] = u
	}
	return &implRepository{users: byName}
}
