package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// processChatReq binds and validates the chat request body. The body is
// cached so the rate limiter key function can read it first.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		return req, err
	}
	return req, req.validate()
}

// RateLimitKey keys the limiter by userId when the body carries one,
// otherwise by client IP.
func RateLimitKey(c *gin.Context) string {
	var probe struct {
		UserID string `json:"userId"`
	}
	if err := c.ShouldBindBodyWith(&probe, binding.JSON); err == nil && probe.UserID != "" {
		return "user:" + probe.UserID
	}
	return "ip:" + c.ClientIP()
}
