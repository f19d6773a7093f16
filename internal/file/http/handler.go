package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lendit/lendit-backend/internal/auth"
	"github.com/lendit/lendit-backend/internal/file"
	"github.com/lendit/lendit-backend/internal/pkg/request"
	"github.com/lendit/lendit-backend/internal/pkg/response"
)

type Handler struct {
	service file.Service
}

func NewHandler(service file.Service) *Handler {
	return &Handler{service: service}
}

// Upload attaches a photo to an item from a multipart form field "photo".
func (h *Handler) Upload(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	p, err := h.service.Upload(c.Request.Context(), header, auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

// ListByItem returns photo metadata for an item.
func (h *Handler) ListByItem(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	photos, err := h.service.ListByItem(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		out[i] = NewPhotoResponse(p)
	}

	c.JSON(http.StatusOK, out)
}

// Download streams the original photo.
func (h *Handler) Download(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, p, err := h.service.Download(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, p.Size, p.ContentType, stream, nil)
}

// DownloadThumbnail streams the photo's JPEG thumbnail.
func (h *Handler) DownloadThumbnail(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	// Thumbnail size is not tracked, stream until EOF.
	c.DataFromReader(http.StatusOK, -1, "image/jpeg", stream, nil)
}

// Delete removes a photo. Item owner only.
func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), auth.GetUserID(c), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
