package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Chat godoc
// @Summary     Chat with the calendar assistant
// @Description Sends one message to the assistant. When the reply proposes an event and userId is set, the event is stored and returned.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Message and optional context"
// @Success     200 {object} chatResp
// @Failure     400 {object} errorResp "Invalid input"
// @Failure     429 {object} errorResp "Rate limited"
// @Failure     500 {object} errorResp "Assistant unavailable"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.http.Chat: invalid request: %v", err)
		h.abort(c, h.mapError(err))
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.http.Chat: uc.Chat: %v", err)
		h.abort(c, h.mapError(err))
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// RateLimited writes the degraded reply for a throttled caller.
func (h *handler) RateLimited(c *gin.Context) {
	h.l.Warnf(c.Request.Context(), "assistant.http.Chat: rate limited ip=%s", c.ClientIP())
	h.abort(c, errRateLimited)
}

func (h *handler) abort(c *gin.Context, e *chatError) {
	c.AbortWithStatusJSON(e.status, errorResp{Error: e.message, Response: apology})
}
