package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lendit/lendit-backend/internal/auth"
	"github.com/lendit/lendit-backend/internal/itemrequest"
	"github.com/lendit/lendit-backend/internal/pkg/request"
	"github.com/lendit/lendit-backend/internal/pkg/response"
)

type Handler struct {
	service itemrequest.Service
}

func NewHandler(service itemrequest.Service) *Handler {
	return &Handler{service: service}
}

// Create posts a new item request.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	r, err := h.service.Add(c.Request.Context(), auth.GetUserID(c), req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRequestResponse(r))
}

// ListOwn returns the authenticated user's requests with answered items.
func (h *Handler) ListOwn(c *gin.Context) {
	views, err := h.service.ListOwn(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newViewList(views))
}

// ListOthers returns requests made by other users, paged.
func (h *Handler) ListOthers(c *gin.Context) {
	var req ListRequestsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	views, err := h.service.ListOthers(c.Request.Context(), auth.GetUserID(c), req.From, req.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, newViewList(views))
}

// Get returns a single request with answered items. Any user may view it.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	view, err := h.service.GetByID(c.Request.Context(), auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRequestViewResponse(view))
}

func newViewList(views []*itemrequest.View) []RequestViewResponse {
	out := make([]RequestViewResponse, len(views))
	for i, v := range views {
		out[i] = NewRequestViewResponse(v)
	}
	return out
}
