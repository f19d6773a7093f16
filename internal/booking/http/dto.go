package http

import (
	"time"

	"github.com/lendit/lendit-backend/internal/booking"
	itemHttp "github.com/lendit/lendit-backend/internal/item/http"
	"github.com/lendit/lendit-backend/internal/pkg/request"
	userHttp "github.com/lendit/lendit-backend/internal/user/http"
)

// CreateBookingRequest defines the payload for requesting a booking.
type CreateBookingRequest struct {
	ItemID string    `json:"item_id" binding:"required,uuid"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// DecideBookingRequest defines the query parameter for approving or
// rejecting a booking.
type DecideBookingRequest struct {
	Approved *bool `form:"approved" binding:"required"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.PageParams
	State string `form:"state"`
}

// BookingResponse is the booking shape returned by the API.
type BookingResponse struct {
	ID        string           `json:"id"`
	Item      itemHttp.ItemTag `json:"item"`
	Booker    userHttp.UserTag `json:"booker"`
	Start     time.Time        `json:"start"`
	End       time.Time        `json:"end"`
	Status    string           `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Item:      itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker:    userHttp.UserTag{ID: b.BookerID, Name: b.BookerName},
		Start:     b.Start,
		End:       b.End,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}
