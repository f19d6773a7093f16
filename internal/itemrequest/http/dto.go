package http

import (
	"time"

	itemHttp "github.com/lendit/lendit-backend/internal/item/http"
	"github.com/lendit/lendit-backend/internal/itemrequest"
	"github.com/lendit/lendit-backend/internal/pkg/request"
	userHttp "github.com/lendit/lendit-backend/internal/user/http"
)

// CreateRequestRequest defines the payload for posting an item request.
type CreateRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// ListRequestsRequest defines query parameters for browsing other users'
// requests.
type ListRequestsRequest struct {
	request.PageParams
}

// RequestResponse is the plain request shape returned on creation.
type RequestResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Requestor   userHttp.UserTag `json:"requestor"`
	CreatedAt   time.Time        `json:"created_at"`
}

func NewRequestResponse(r *itemrequest.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Requestor:   userHttp.UserTag{ID: r.RequestorID, Name: r.RequestorName},
		CreatedAt:   r.CreatedAt,
	}
}

// RequestViewResponse is a request together with the items answering it.
type RequestViewResponse struct {
	RequestResponse
	Items []itemHttp.ItemResponse `json:"items"`
}

func NewRequestViewResponse(v *itemrequest.View) RequestViewResponse {
	items := make([]itemHttp.ItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = itemHttp.NewItemResponse(it)
	}

	return RequestViewResponse{
		RequestResponse: NewRequestResponse(&v.Request),
		Items:           items,
	}
}
