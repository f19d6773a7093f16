package item

import (
	"net/http"
	"time"

	"github.com/lendit/lendit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "item not found")
	ErrRequestNotFound  = apperror.New(http.StatusNotFound, "item request not found")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "only the item owner may do this")
	ErrNoItems          = apperror.New(http.StatusNotFound, "user owns no items")
	ErrBlankName        = apperror.New(http.StatusBadRequest, "item name must not be blank")
	ErrBlankDescription = apperror.New(http.StatusBadRequest, "item description must not be blank")
	ErrNotEligible      = apperror.New(http.StatusBadRequest, "user has no finished approved booking of this item")
	ErrBlankComment     = apperror.New(http.StatusBadRequest, "comment text must not be blank")
)

// Item is a thing offered for lending. Available gates new bookings.
type Item struct {
	ID          string // UUID assigned by the store
	Name        string
	Description string
	Available   bool
	OwnerID     string
	OwnerName   string
	RequestID   *string // item request that prompted this listing, if any
	CreatedAt   time.Time
}

// Patch holds a partial item update. Nil fields keep the stored value.
type Patch struct {
	Name        *string
	Description *string
	Available   *bool
}

// Comment is feedback left by a past booker. Public once posted.
type Comment struct {
	ID         string
	Text       string
	ItemID     string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
}

// BookingRef is the slice of booking data item views need.
type BookingRef struct {
	ID       string
	BookerID string
	Start    time.Time
	End      time.Time
}

// View is an item enriched with scheduling data and comments as seen by a
// specific viewer. Last/Next are only populated for the item's owner.
type View struct {
	Item
	Last     *BookingRef
	Next     *BookingRef
	Comments []Comment
}
