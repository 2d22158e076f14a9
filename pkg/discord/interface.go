package discord

import (
	"context"
	"errors"

	"auth-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord reports operational problems to a Discord channel.
type IDiscord interface {
	// ReportBug posts message, split into as many webhook calls as Discord's length limit requires.
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New creates a webhook client. Logger may be nil.
func New(l log.Logger, id, token string, cfg Config) (IDiscord, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	cfg = withDefaults(cfg)
	return &discordImpl{
		l:       l,
		webhook: webhookInfo{id: id, token: token},
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
