package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/media"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

// UploadHandler accepts multipart uploads and hands them to the media host.
type UploadHandler struct {
	uploader media.Uploader
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(uploader media.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload POST /api/v1/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	if h.uploader == nil {
		response.Error(c, http.StatusServiceUnavailable, CodeInvalidParam, "file uploads are not configured")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, CodeInvalidParam, "missing file field")
		return
	}
	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, CodeInvalidParam, "unreadable file")
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.Request.Context(), file, header.Filename)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, dto.UploadResponse{URL: url})
}
