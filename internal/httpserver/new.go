package httpserver

import (
	"errors"
	"time"

	"auth-srv/internal/middleware"
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/log"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "auth-srv"
	serviceVersion = "1.0.0"

	defaultShutdownTimeout = 10 * time.Second
)

// HTTPServer represents the HTTP server with all dependencies.
// New wires and validates them and maps every route. Run serves until shutdown.
type HTTPServer struct {
	// Server configuration
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	shutdownTimeout time.Duration
	cors            middleware.CORSConfig

	// Authentication
	jwtManager scope.Manager
	userRepo   repository.Repository

	// Monitoring & Notification
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server Configuration
	Host string
	Port int
	// Mode is the gin mode: debug, release or test.
	Mode            string
	ShutdownTimeout time.Duration
	CORS            middleware.CORSConfig

	// Authentication Configuration
	JWTManager     scope.Manager
	UserRepository repository.Repository

	// Monitoring & Notification Configuration. Optional.
	Discord discord.IDiscord
}

// New creates a new HTTPServer with every route mapped. It does not listen.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		gin:             gin.New(),
		l:               l,
		host:            cfg.Host,
		port:            cfg.Port,
		shutdownTimeout: cfg.ShutdownTimeout,
		cors:            cfg.CORS,

		jwtManager: cfg.JWTManager,
		userRepo:   cfg.UserRepository,

		discord: cfg.Discord,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}
	if len(srv.cors.AllowedOrigins) == 0 {
		srv.cors = middleware.DefaultCORSConfig()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.port < 1 || srv.port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	if srv.jwtManager == nil {
		return errors.New("JWTManager is required")
	}
	if srv.userRepo == nil {
		return errors.New("UserRepository is required")
	}

	return nil
}
