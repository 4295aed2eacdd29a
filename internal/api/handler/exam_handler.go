package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// ExamHandler serves the exams module.
type ExamHandler struct {
	svc      service.ExamService
	pageSize int
}

// NewExamHandler creates an ExamHandler.
func NewExamHandler(svc service.ExamService, pageSize int) *ExamHandler {
	return &ExamHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/exams
func (h *ExamHandler) Create(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	exam, err := h.svc.Create(c.Request.Context(), role, userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, exam)
}

// Get GET /api/v1/exams/:id
func (h *ExamHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	exam, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, exam)
}

// Update PUT /api/v1/exams/:id
func (h *ExamHandler) Update(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	exam, err := h.svc.Update(c.Request.Context(), role, userID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, exam)
}

// Delete DELETE /api/v1/exams/:id
func (h *ExamHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/exams
func (h *ExamHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	exams, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, exams, total, page, h.pageSize)
}
