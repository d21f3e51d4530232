package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/middleware"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	llm       gemini.IGemini
	eventRepo repository.Repository
	db        *sql.DB
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// RequestsPerMin throttles the chat and event endpoints per caller; zero disables it.
	RequestsPerMin int

	// LLM may be nil when no API key is configured.
	LLM       gemini.IGemini
	EventRepo repository.Repository
	// DB is pinged by the readiness check when set.
	DB *sql.DB
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          middleware.New(logger, middleware.Config{RequestsPerMin: cfg.RequestsPerMin}),
		llm:         cfg.LLM,
		eventRepo:   cfg.EventRepo,
		db:          cfg.DB,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.eventRepo == nil {
		return errors.New("event repository is required")
	}
	return nil
}
