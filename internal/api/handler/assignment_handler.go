package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// AssignmentHandler serves the assignments module.
type AssignmentHandler struct {
	svc      service.AssignmentService
	pageSize int
}

// NewAssignmentHandler creates an AssignmentHandler.
func NewAssignmentHandler(svc service.AssignmentService, pageSize int) *AssignmentHandler {
	return &AssignmentHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	assignment, err := h.svc.Create(c.Request.Context(), role, userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, assignment)
}

// Get GET /api/v1/assignments/:id
func (h *AssignmentHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	assignment, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, assignment)
}

// Update PUT /api/v1/assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	assignment, err := h.svc.Update(c.Request.Context(), role, userID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, assignment)
}

// Delete DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	assignments, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, assignments, total, page, h.pageSize)
}
