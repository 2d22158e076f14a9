package discord

import "time"

const (
	webhookURLTemplate = "%s/%s/%s"

	DefaultBaseURL    = "https://discord.com/api/webhooks"
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultUsername   = "auth-srv"
	UserAgent         = "auth-srv-discord-webhook/1.0"

	// MaxMessageLength is Discord's hard limit for a plain content message.
	MaxMessageLength = 2000
)
