package booking

import (
	"context"
	"time"

	"github.com/lendit/lendit-backend/internal/item"
	"github.com/lendit/lendit-backend/internal/user"
)

// ItemSource resolves items. Implemented by item.Service.
type ItemSource interface {
	GetByID(ctx context.Context, id string) (*item.Item, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

// UserSource resolves users. Implemented by user.Service.
type UserSource interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

type Service interface {
	Create(ctx context.Context, bookerID, itemID string, start, end time.Time) (*Booking, error)
	Decide(ctx context.Context, ownerID, bookingID string, approve bool) (*Booking, error)
	GetByID(ctx context.Context, userID, bookingID string) (*Booking, error)
	List(ctx context.Context, subjectID string, role Role, state string, from, size int) ([]*Booking, int, error)
}

type service struct {
	repo  Repository
	items ItemSource
	users UserSource
}

func NewService(repo Repository, items ItemSource, users UserSource) Service {
	return &service{
		repo:  repo,
		items: items,
		users: users,
	}
}

// Create validates and persists a new booking in WAITING status.
func (s *service) Create(ctx context.Context, bookerID, itemID string, start, end time.Time) (*Booking, error) {
	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := validateCreate(it, booker.ID, start, end); err != nil {
		return nil, err
	}

	b := &Booking{
		ItemID:     it.ID,
		ItemName:   it.Name,
		BookerID:   booker.ID,
		BookerName: booker.Name,
		OwnerID:    it.OwnerID,
		Start:      start,
		End:        end,
		Status:     StatusWaiting,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// Decide moves a WAITING booking to APPROVED or REJECTED. Only the item
// owner may decide, and a booking is decided at most once: the status write
// is conditional on WAITING, so of two racing decides exactly one wins and
// the loser observes ErrAlreadyDecided.
func (s *service) Decide(ctx context.Context, ownerID, bookingID string, approve bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if b.Status != StatusWaiting {
		return nil, ErrAlreadyDecided
	}
	if b.OwnerID != ownerID {
		return nil, ErrNotAuthorized
	}

	newStatus := StatusRejected
	if approve {
		newStatus = StatusApproved
	}

	decided, err := s.repo.DecideIfWaiting(ctx, bookingID, newStatus)
	if err != nil {
		return nil, err
	}
	if !decided {
		return nil, ErrAlreadyDecided
	}

	b.Status = newStatus
	return b, nil
}

// GetByID returns the booking to its booker or the item's owner.
func (s *service) GetByID(ctx context.Context, userID, bookingID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if userID != b.BookerID && userID != b.OwnerID {
		return nil, ErrNotAuthorized
	}

	return b, nil
}

// List returns the subject's bookings filtered by state, ordered by start
// descending. With role owner the subject must own at least one item.
func (s *service) List(ctx context.Context, subjectID string, role Role, stateStr string, from, size int) ([]*Booking, int, error) {
	state, err := ParseState(stateStr)
	if err != nil {
		return nil, 0, err
	}

	if _, err := s.users.GetByID(ctx, subjectID); err != nil {
		return nil, 0, err
	}

	if role == RoleOwner {
		count, err := s.items.CountByOwner(ctx, subjectID)
		if err != nil {
			return nil, 0, err
		}
		if count == 0 {
			return nil, 0, ErrNoItems
		}
	}

	return s.repo.ListByState(ctx, subjectID, role, state, time.Now().UTC(), from, size)
}
