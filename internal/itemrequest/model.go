package itemrequest

import (
	"net/http"
	"time"

	"github.com/lendit/lendit-backend/internal/item"
	"github.com/lendit/lendit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "item request not found")
	ErrBlankDescription = apperror.New(http.StatusBadRequest, "request description must not be blank")
)

// Request is a wish for an item nobody has listed yet. Items may link back
// to the request that prompted their listing.
type Request struct {
	ID            string
	Description   string
	RequestorID   string
	RequestorName string
	CreatedAt     time.Time
}

// View is a request together with the items listed in answer to it.
type View struct {
	Request
	Items []*item.Item
}
