package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list/feed query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errMissingUserID
	}
	return req, req.validate()
}

// RateLimitKey keys the limiter by the user_id query parameter, otherwise by
// client IP.
func RateLimitKey(c *gin.Context) string {
	if userID := strings.TrimSpace(c.Query("user_id")); userID != "" {
		return "user:" + userID
	}
	return "ip:" + c.ClientIP()
}
