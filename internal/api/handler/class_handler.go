package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// GradeHandler serves the grades module.
type GradeHandler struct {
	svc      service.GradeService
	pageSize int
}

// NewGradeHandler creates a GradeHandler.
func NewGradeHandler(svc service.GradeService, pageSize int) *GradeHandler {
	return &GradeHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/grades
func (h *GradeHandler) Create(c *gin.Context) {
	var req dto.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	grade, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, grade)
}

// Get GET /api/v1/grades/:id
func (h *GradeHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	grade, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, grade)
}

// Update PUT /api/v1/grades/:id
func (h *GradeHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	grade, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, grade)
}

// Delete DELETE /api/v1/grades/:id
func (h *GradeHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/grades
func (h *GradeHandler) List(c *gin.Context) {
	page := pageQuery(c)
	grades, total, err := h.svc.List(c.Request.Context(), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, grades, total, page, h.pageSize)
}

// ClassHandler serves the classes module.
type ClassHandler struct {
	svc      service.ClassService
	pageSize int
}

// NewClassHandler creates a ClassHandler.
func NewClassHandler(svc service.ClassService, pageSize int) *ClassHandler {
	return &ClassHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	class, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, class)
}

// Get GET /api/v1/classes/:id
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	class, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, class)
}

// Update PUT /api/v1/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	class, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, class)
}

// Delete DELETE /api/v1/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/classes
func (h *ClassHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	classes, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, classes, total, page, h.pageSize)
}
