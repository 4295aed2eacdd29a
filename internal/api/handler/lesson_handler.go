package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// LessonHandler serves the lessons module. Writes carry the caller's
// identity so the service can enforce lesson ownership for teachers.
type LessonHandler struct {
	svc      service.LessonService
	pageSize int
}

// NewLessonHandler creates a LessonHandler.
func NewLessonHandler(svc service.LessonService, pageSize int) *LessonHandler {
	return &LessonHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/lessons
func (h *LessonHandler) Create(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	lesson, err := h.svc.Create(c.Request.Context(), role, userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, lesson)
}

// Get GET /api/v1/lessons/:id
func (h *LessonHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	lesson, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, lesson)
}

// Update PUT /api/v1/lessons/:id
func (h *LessonHandler) Update(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	lesson, err := h.svc.Update(c.Request.Context(), role, userID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, lesson)
}

// Delete DELETE /api/v1/lessons/:id
func (h *LessonHandler) Delete(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), role, userID, id); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// List GET /api/v1/lessons
func (h *LessonHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	lessons, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, lessons, total, page, h.pageSize)
}
