package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// SubjectHandler serves the subjects module.
type SubjectHandler struct {
	svc      service.SubjectService
	pageSize int
}

// NewSubjectHandler creates a SubjectHandler.
func NewSubjectHandler(svc service.SubjectService, pageSize int) *SubjectHandler {
	return &SubjectHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	subject, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, subject)
}

// Get GET /api/v1/subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	subject, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, subject)
}

// Update PUT /api/v1/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	subject, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, subject)
}

// Delete DELETE /api/v1/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	page := pageQuery(c)
	subjects, total, err := h.svc.List(c.Request.Context(), queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, subjects, total, page, h.pageSize)
}
