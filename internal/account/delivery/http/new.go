package http

import (
	"auth-srv/internal/account"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/log"
)

type Handler struct {
	l  log.Logger
	uc account.UseCase
	d  discord.IDiscord
}

func New(l log.Logger, uc account.UseCase, d discord.IDiscord) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
