package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// AttendanceHandler serves the attendance module, including the
// grouped roll-call session views built on top of raw records.
type AttendanceHandler struct {
	svc      service.AttendanceService
	pageSize int
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(svc service.AttendanceService, pageSize int) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, pageSize: pageSize}
}

// Create POST /api/v1/attendances
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	record, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, record)
}

// Get GET /api/v1/attendances/:id
func (h *AttendanceHandler) Get(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	record, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, record)
}

// Update PUT /api/v1/attendances/:id
func (h *AttendanceHandler) Update(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	record, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, record)
}

// Delete DELETE /api/v1/attendances/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
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

// List GET /api/v1/attendances
func (h *AttendanceHandler) List(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	page := pageQuery(c)
	records, total, err := h.svc.List(c.Request.Context(), role, userID, queryParams(c), page)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OKPage(c, records, total, page, h.pageSize)
}

// ListGroups GET /api/v1/attendances/groups
func (h *AttendanceHandler) ListGroups(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	groups, err := h.svc.ListGroups(c.Request.Context(), role, userID, queryParams(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, groups)
}

// DeleteGroup DELETE /api/v1/attendances/groups
func (h *AttendanceHandler) DeleteGroup(c *gin.Context) {
	var req dto.DeleteAttendanceGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, CodeInvalidParam, "invalid request body")
		return
	}
	deleted, err := h.svc.DeleteGroup(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": deleted})
}
