package http

import (
	"auth-srv/internal/authentication"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc authentication.UseCase
	d  discord.IDiscord
}

// New returns the HTTP handler of the authentication domain. d may be nil.
func New(l log.Logger, uc authentication.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
