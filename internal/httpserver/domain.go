package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "calendar-assistant/internal/assistant/delivery/http"
	assistantUC "calendar-assistant/internal/assistant/usecase"
	eventHTTP "calendar-assistant/internal/event/delivery/http"
	eventUC "calendar-assistant/internal/event/usecase"
	"calendar-assistant/pkg/response"
)

// setupAssistantDomain registers POST /api/v1/assistant/chat.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := assistantUC.New(srv.l, srv.llm, srv.eventRepo)
	h := assistantHTTP.New(srv.l, uc)
	assistantHTTP.RegisterRoutes(api, h, srv.mw.RateLimit(assistantHTTP.RateLimitKey, h.RateLimited))

	if srv.llm == nil {
		srv.l.Warnf(ctx, "Assistant domain registered without a generation client: chat requests will fail")
	} else {
		srv.l.Infof(ctx, "Assistant domain registered (model=%s)", srv.llm.Model())
	}
	return nil
}

// setupEventDomain registers the read-only event routes behind the per-caller
// rate limiter.
func (srv HTTPServer) setupEventDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := eventUC.New(srv.l, srv.eventRepo, nil)
	h := eventHTTP.New(srv.l, uc)
	eventHTTP.RegisterRoutes(api, h, srv.mw.RateLimit(eventHTTP.RateLimitKey, response.TooManyRequests))

	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
