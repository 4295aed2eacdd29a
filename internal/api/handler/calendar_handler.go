package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// CalendarHandler serves the recurring weekly slots and their
// projections onto the current calendar week.
type CalendarHandler struct {
	svc      service.CalendarService
	pageSize int
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc service.CalendarService, pageSize int) *CalendarHandler {
	return &CalendarHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/calendars
func (h *CalendarHandler) Create(c *gin.Context) {
	var req dto.CreateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	slot, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, slot)
}

// Get GET /api/v1/calendars/:id
func (h *CalendarHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	slot, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, slot)
}

// Update PUT /api/v1/calendars/:id
func (h *CalendarHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	slot, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, slot)
}

// Delete DELETE /api/v1/calendars/:id
func (h *CalendarHandler) Delete(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// List GET /api/v1/calendars
func (h *CalendarHandler) List(c *gin.Context) {
	page := pageQuery(c)
	slots, total, err := h.svc.List(c.Request.Context(), queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, slots, total, page, h.pageSize)
}

// Week GET /api/v1/calendars/week
func (h *CalendarHandler) Week(c *gin.Context) {
	events, err := h.svc.WeekEvents(c.Request.Context(), time.Now(), queryParams(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, events)
}

// WeekICS GET /api/v1/calendars/week.ics
func (h *CalendarHandler) WeekICS(c *gin.Context) {
	doc, err := h.svc.WeekICS(c.Request.Context(), time.Now(), queryParams(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="week.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}
