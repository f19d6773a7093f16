package http

import (
	"time"

	"github.com/lendit/lendit-backend/internal/item"
	"github.com/lendit/lendit-backend/internal/pkg/request"
	userHttp "github.com/lendit/lendit-backend/internal/user/http"
)

// ItemTag is a brief representation of an item embedded in other responses.
type ItemTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreateItemRequest defines the payload for listing a new item.
type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

// UpdateItemRequest defines fields allowed to be updated via PATCH.
// Pointers distinguish "field not sent" from "field sent empty/false".
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// SearchItemsRequest defines query parameters for item search.
type SearchItemsRequest struct {
	request.PageParams
	Text string `form:"text"`
}

// ListItemsRequest defines query parameters for listing own items.
type ListItemsRequest struct {
	request.PageParams
}

// CreateCommentRequest defines the payload for commenting on an item.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// ItemResponse is the plain item shape returned by create/update/search.
type ItemResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Available   bool             `json:"available"`
	Owner       userHttp.UserTag `json:"owner"`
	RequestID   *string          `json:"request_id,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func NewItemResponse(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		Owner:       userHttp.UserTag{ID: it.OwnerID, Name: it.OwnerName},
		RequestID:   it.RequestID,
		CreatedAt:   it.CreatedAt,
	}
}

// BookingRefResponse is the compact booking shape embedded in item views.
type BookingRefResponse struct {
	ID       string    `json:"id"`
	BookerID string    `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

func newBookingRefResponse(ref *item.BookingRef) *BookingRefResponse {
	if ref == nil {
		return nil
	}
	return &BookingRefResponse{
		ID:       ref.ID,
		BookerID: ref.BookerID,
		Start:    ref.Start,
		End:      ref.End,
	}
}

// CommentResponse is the comment shape returned by the API.
type CommentResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"author_name"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCommentResponse(c *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.AuthorName,
		CreatedAt:  c.CreatedAt,
	}
}

// ItemViewResponse is an item enriched with last/next bookings and comments.
type ItemViewResponse struct {
	ItemResponse
	LastBooking *BookingRefResponse `json:"last_booking"`
	NextBooking *BookingRefResponse `json:"next_booking"`
	Comments    []CommentResponse   `json:"comments"`
}

func NewItemViewResponse(v *item.View) ItemViewResponse {
	comments := make([]CommentResponse, len(v.Comments))
	for i := range v.Comments {
		comments[i] = NewCommentResponse(&v.Comments[i])
	}

	return ItemViewResponse{
		ItemResponse: NewItemResponse(&v.Item),
		LastBooking:  newBookingRefResponse(v.Last),
		NextBooking:  newBookingRefResponse(v.Next),
		Comments:     comments,
	}
}
