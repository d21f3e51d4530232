package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"calendar-assistant/config"
	_ "calendar-assistant/docs" // Swagger docs
	"calendar-assistant/internal/httpserver"
	"calendar-assistant/pkg/gemini"
	"calendar-assistant/pkg/log"
)

// @title       Calendar Assistant API
// @description Natural-language calendar assistant backed by Gemini, with event storage in SQLite or Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Event store
	store, err := openEventStore(ctx, cfg.EventStore, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open event store: ", err)
		return
	}
	defer store.Close()
	logger.Infof(ctx, "Event store: %s", cfg.EventStore.Driver)

	// 4. Gemini (optional: without a key chat requests fail with a configuration error)
	var llm gemini.IGemini
	if strings.TrimSpace(cfg.Gemini.APIKey) != "" {
		llm, err = gemini.New(gemini.Config{
			APIKey:     cfg.Gemini.APIKey,
			Model:      cfg.Gemini.Model,
			APIURL:     cfg.Gemini.APIURL,
			HTTPClient: &http.Client{Timeout: cfg.Gemini.Timeout},
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Gemini client: ", err)
			return
		}
		logger.Infof(ctx, "✅ Gemini initialized (model=%s)", llm.Model())
	} else {
		logger.Warn(ctx, "GEMINI_API_KEY is missing: assistant chat is disabled")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		LLM:            llm,
		EventRepo:      store.repo,
		DB:             store.db,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
