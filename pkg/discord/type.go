package discord

import (
	"net/http"
	"time"

	"auth-srv/pkg/log"
)

// Config tunes delivery. Zero fields fall back to the package defaults.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

// WebhookPayload is the JSON body accepted by a Discord webhook.
type WebhookPayload struct {
	Content  string `json:"content"`
	Username string `json:"username,omitempty"`
}

type webhookInfo struct {
	id    string
	token string
}

type discordImpl struct {
	l       log.Logger
	webhook webhookInfo
	config  Config
	client  *http.Client
}
