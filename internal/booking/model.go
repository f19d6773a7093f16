package booking

import (
	"net/http"
	"time"

	"github.com/lendit/lendit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrItemUnavailable  = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrSelfBooking      = apperror.New(http.StatusNotFound, "item cannot be booked by its owner")
	ErrInvalidInterval  = apperror.New(http.StatusBadRequest, "start must be strictly before end")
	ErrAlreadyDecided   = apperror.New(http.StatusConflict, "booking has already been decided")
	ErrNotAuthorized    = apperror.New(http.StatusForbidden, "not allowed to access this booking")
	ErrUnsupportedState = apperror.New(http.StatusBadRequest, "unsupported booking state")
	ErrNoItems          = apperror.New(http.StatusNotFound, "owner has no items")
)

// Status is the booking lifecycle state. WAITING is the only non-terminal
// status: a booking transitions exactly once to APPROVED or REJECTED.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Booking is a request to rent an item for a time interval. Bookings are
// never deleted; they are the audit trail of all rental activity.
type Booking struct {
	ID         string
	ItemID     string
	ItemName   string
	BookerID   string
	BookerName string
	OwnerID    string // item owner, joined for authorization checks
	Start      time.Time
	End        time.Time
	Status     Status
	CreatedAt  time.Time
}
