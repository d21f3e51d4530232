package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the assistant endpoints onto rg. limit runs before
// the chat handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, limit gin.HandlerFunc) {
	assistantGroup := rg.Group("/assistant")
	{
		assistantGroup.POST("/chat", limit, h.Chat)
	}
}
