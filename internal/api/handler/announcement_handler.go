package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// AnnouncementHandler serves the announcements module.
type AnnouncementHandler struct {
	svc      service.AnnouncementService
	pageSize int
}

// NewAnnouncementHandler creates an AnnouncementHandler.
func NewAnnouncementHandler(svc service.AnnouncementService, pageSize int) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	ann, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, ann)
}

// Get GET /api/v1/announcements/:id
func (h *AnnouncementHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	ann, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, ann)
}

// Update PUT /api/v1/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	ann, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, ann)
}

// Delete DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	anns, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, anns, total, page, h.pageSize)
}
