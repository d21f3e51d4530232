package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/pkg/response"
)

const calendarContentType = "text/calendar; charset=utf-8"

// List godoc
// @Summary     List a user's events
// @Description Returns the user's events ordered by start time, optionally restricted to a window.
// @Tags        Events
// @Produce     json
// @Param       user_id query string true  "Owner of the events"
// @Param       from    query string false "Window start (RFC3339)"
// @Param       to      query string false "Window end (RFC3339)"
// @Param       limit   query int    false "Max events (default: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "event.http.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Feed godoc
// @Summary     iCalendar feed of a user's events
// @Description Same selection as List, rendered as text/calendar for subscription.
// @Tags        Events
// @Produce     text/calendar
// @Param       user_id query string true  "Owner of the events"
// @Param       from    query string false "Window start (RFC3339)"
// @Param       to      query string false "Window end (RFC3339)"
// @Success     200 {string} string "VCALENDAR body"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/feed.ics [GET]
func (h *handler) Feed(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Feed(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "event.http.Feed: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Data(http.StatusOK, calendarContentType, output.Calendar)
}
