package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// ResultHandler serves the results module.
type ResultHandler struct {
	svc      service.ResultService
	pageSize int
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(svc service.ResultService, pageSize int) *ResultHandler {
	return &ResultHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/results
func (h *ResultHandler) Create(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	result, err := h.svc.Create(c.Request.Context(), role, userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, result)
}

// Get GET /api/v1/results/:id
func (h *ResultHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	result, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Update PUT /api/v1/results/:id
func (h *ResultHandler) Update(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	result, err := h.svc.Update(c.Request.Context(), role, userID, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Delete DELETE /api/v1/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/results
func (h *ResultHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	results, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, results, total, page, h.pageSize)
}
