package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// ParentHandler serves the parents module.
type ParentHandler struct {
	svc      service.ParentService
	pageSize int
}

// NewParentHandler creates a ParentHandler.
func NewParentHandler(svc service.ParentService, pageSize int) *ParentHandler {
	return &ParentHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/parents
func (h *ParentHandler) Create(c *gin.Context) {
	var req dto.CreateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	parent, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, parent)
}

// Get GET /api/v1/parents/:id
func (h *ParentHandler) Get(c *gin.Context) {
	parent, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, parent)
}

// Update PUT /api/v1/parents/:id
func (h *ParentHandler) Update(c *gin.Context) {
	var req dto.UpdateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	parent, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, parent)
}

// Delete DELETE /api/v1/parents/:id
func (h *ParentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// List GET /api/v1/parents
func (h *ParentHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	parents, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, parents, total, page, h.pageSize)
}
