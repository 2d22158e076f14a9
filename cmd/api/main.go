package main

import (
	"context"
	"fmt"
	"os"

	"auth-srv/config"
	"auth-srv/internal/httpserver"
	"auth-srv/internal/middleware"
	"auth-srv/internal/user/repository/static"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
)

// @title Auth Service API
// @description Issues and verifies HS256 session tokens for a small set of protected routes.
// @version 1
// @host localhost:3000
// @schemes http
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the service and blocks until shutdown. Returning instead of exiting
// lets deferred cleanup such as the Discord client close run on every path.
func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	if cfg.JWT.IsDefault() {
		logger.Warn(ctx, "JWT_SECRET is not set: signing tokens with the public default secret. Never run like this in production.")
	} else if err := jwt.CheckSecretStrength(cfg.JWT.SecretKey); err != nil {
		logger.Warnf(ctx, "Weak JWT_SECRET: %v", err)
	}

	// Initialize token manager
	jwtManager, err := jwt.New(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize JWT manager: %w", err)
	}

	// Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.Enabled() {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken, discord.Config{})
		if err != nil {
			return fmt.Errorf("failed to initialize Discord: %w", err)
		}
		defer discordClient.Close()
	}

	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = cfg.CORS.AllowedOrigins

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:            cfg.HTTPServer.Host,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.GinMode(),
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CORS:            cors,

		// Authentication Configuration
		JWTManager:     jwtManager,
		UserRepository: static.New(),

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}

	logger.Infof(ctx, "Starting auth-srv in %s environment", cfg.Environment.Name)
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return err
	}
	return nil
}
