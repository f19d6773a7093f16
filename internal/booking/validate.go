package booking

import (
	"time"

	"github.com/lendit/lendit-backend/internal/item"
)

// validateCreate decides whether a booking request is legal given the item
// and the requesting user. Checks run in a fixed order:
//  1. the item must currently be available,
//  2. owners cannot book their own items,
//  3. start must be strictly before end (equal timestamps fail).
//
// Overlap with existing bookings is deliberately not checked: the system does
// not prevent double-booking of the same interval.
func validateCreate(it *item.Item, bookerID string, start, end time.Time) error {
	if !it.Available {
		return ErrItemUnavailable
	}
	if bookerID == it.OwnerID {
		return ErrSelfBooking
	}
	if !start.Before(end) {
		return ErrInvalidInterval
	}
	return nil
}
