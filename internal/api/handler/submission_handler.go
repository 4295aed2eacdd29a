package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// SubmissionHandler serves the submissions module. Every operation
// carries the caller's identity: students touch only their own rows.
type SubmissionHandler struct {
	svc      service.SubmissionService
	pageSize int
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(svc service.SubmissionService, pageSize int) *SubmissionHandler {
	return &SubmissionHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	sub, err := h.svc.Create(c.Request.Context(), role, userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, sub)
}

// Get GET /api/v1/submissions/:id
func (h *SubmissionHandler) Get(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	sub, err := h.svc.GetByID(c.Request.Context(), role, userID, id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, sub)
}

// Update PUT /api/v1/submissions/:id
func (h *SubmissionHandler) Update(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	sub, err := h.svc.Update(c.Request.Context(), role, userID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, sub)
}

// Delete DELETE /api/v1/submissions/:id
func (h *SubmissionHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/submissions
func (h *SubmissionHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	subs, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, subs, total, page, h.pageSize)
}
