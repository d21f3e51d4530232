package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the event read endpoints onto rg. limit runs before
// every event handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, limit gin.HandlerFunc) {
	events := rg.Group("/events", limit)
	{
		events.GET("", h.List)
		events.GET("/feed.ics", h.Feed)
	}
}
