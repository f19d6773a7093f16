package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lendit/lendit-backend/internal/auth"
	"github.com/lendit/lendit-backend/internal/booking"
	"github.com/lendit/lendit-backend/internal/pkg/request"
	"github.com/lendit/lendit-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Create requests a new booking on an item. The booking starts WAITING.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), req.ItemID, req.Start, req.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// Decide approves or rejects a WAITING booking. Item owner only.
func (h *Handler) Decide(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req DecideBookingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "approved query parameter is required"})
		return
	}

	b, err := h.service.Decide(c.Request.Context(), auth.GetUserID(c), uri.ID, *req.Approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Get returns a booking to its booker or the item's owner.
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), auth.GetUserID(c), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// List returns the authenticated user's bookings filtered by state.
func (h *Handler) List(c *gin.Context) {
	h.list(c, booking.RoleBooker)
}

// ListOwner returns bookings on the authenticated user's items filtered by state.
func (h *Handler) ListOwner(c *gin.Context) {
	h.list(c, booking.RoleOwner)
}

func (h *Handler) list(c *gin.Context, role booking.Role) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		response.Error(c, err)
		return
	}

	bookings, total, err := h.service.List(c.Request.Context(), auth.GetUserID(c), role, req.State, req.From, req.Size)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.From, req.Size, total))
}
