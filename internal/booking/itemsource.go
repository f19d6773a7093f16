package booking

import (
	"context"
	"time"

	"github.com/lendit/lendit-backend/internal/item"
)

// ItemBookingSource adapts the booking repository to the data source the
// item module needs for its views and comment eligibility.
type ItemBookingSource struct {
	repo Repository
}

func NewItemBookingSource(repo Repository) *ItemBookingSource {
	return &ItemBookingSource{repo: repo}
}

// ApprovedByItems returns all approved bookings for the given items, keyed
// by item id.
func (s *ItemBookingSource) ApprovedByItems(ctx context.Context, itemIDs []string) (map[string][]item.BookingRef, error) {
	bookings, err := s.repo.ApprovedForItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	refs := make(map[string][]item.BookingRef)
	for _, b := range bookings {
		refs[b.ItemID] = append(refs[b.ItemID], item.BookingRef{
			ID:       b.ID,
			BookerID: b.BookerID,
			Start:    b.Start,
			End:      b.End,
		})
	}

	return refs, nil
}

// HasFinishedApproved reports whether the booker has an approved booking of
// the item that ended before now.
func (s *ItemBookingSource) HasFinishedApproved(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error) {
	return s.repo.HasFinishedApproved(ctx, bookerID, itemID, now)
}
