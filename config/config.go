package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"auth-srv/pkg/jwt"

	"github.com/caarlos0/env/v9"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	// DefaultJWTSecret is used when JWT_SECRET is unset. It is public and must
	// never sign tokens in production.
	DefaultJWTSecret = "your-secret-key-change-in-production"
)

type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Authentication & Security Configuration
	JWT  JWTConfig
	CORS CORSConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for environment-aware features
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"development"`
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"3000"`
	// Mode is the gin mode outside production. Production always runs release.
	Mode            string        `env:"GIN_MODE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"development"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"console"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"true"`
}

// JWTConfig is the configuration for session tokens
type JWTConfig struct {
	// SecretKey falls back to DefaultJWTSecret when unset.
	SecretKey string `env:"JWT_SECRET"`
	Issuer    string `env:"JWT_ISSUER" envDefault:"auth-srv"`
}

// IsDefault reports whether the secret is the public fallback.
func (c JWTConfig) IsDefault() bool {
	return c.SecretKey == DefaultJWTSecret
}

// CORSConfig is the configuration for cross-origin requests
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Enabled reports whether panic reports should be sent to Discord.
func (c DiscordConfig) Enabled() bool {
	return c.WebhookID != "" && c.WebhookToken != ""
}

// IsProduction reports whether ENV names the production environment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment.Name, EnvProduction)
}

// GinMode returns the gin mode to run the server in. Production is always release,
// which also keeps error details out of 500 responses.
func (c Config) GinMode() string {
	if c.IsProduction() {
		return "release"
	}
	if c.HTTPServer.Mode != "" {
		return c.HTTPServer.Mode
	}
	return "debug"
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.JWT.SecretKey == "" {
		cfg.JWT.SecretKey = DefaultJWTSecret
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

var (
	ErrInvalidPort    = errors.New("PORT must be between 1 and 65535")
	ErrInsecureSecret = errors.New("JWT_SECRET must be set to a non-default value in production")
	ErrShortSecret    = fmt.Errorf("JWT_SECRET must be at least %d characters in production", jwt.MinSecretKeyLen)
)

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port < 1 || cfg.HTTPServer.Port > 65535 {
		return ErrInvalidPort
	}

	if cfg.IsProduction() {
		if cfg.JWT.IsDefault() {
			return ErrInsecureSecret
		}
		if jwt.CheckSecretStrength(cfg.JWT.SecretKey) != nil {
			return ErrShortSecret
		}
	}

	return nil
}
