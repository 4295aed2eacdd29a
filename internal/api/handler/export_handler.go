package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams XLSX workbooks built from the caller's visible rows.
type ExportHandler struct {
	svc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// Results GET /api/v1/export/results.xlsx
func (h *ExportHandler) Results(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	buf, filename, err := h.svc.ExportResults(c.Request.Context(), role, userID, queryParams(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Attendance GET /api/v1/export/attendance.xlsx
func (h *ExportHandler) Attendance(c *gin.Context) {
	userID, role, ok := callerIdentity(c)
	if !ok {
		return
	}
	buf, filename, err := h.svc.ExportAttendance(c.Request.Context(), role, userID, queryParams(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
