package item

import (
	"context"
	"strings"
	"time"

	"github.com/lendit/lendit-backend/internal/pkg/request"
	"github.com/lendit/lendit-backend/internal/user"
)

// CreateRequest holds the fields for listing a new item.
type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *string
}

// UserSource resolves users. Implemented by user.Service.
type UserSource interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// RequestSource checks item-request existence. Implemented by itemrequest.Service.
type RequestSource interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// BookingSource provides the booking data item views and comment eligibility
// depend on. Implemented by the booking module.
type BookingSource interface {
	// ApprovedByItems returns all approved bookings for the given items,
	// keyed by item id.
	ApprovedByItems(ctx context.Context, itemIDs []string) (map[string][]BookingRef, error)

	// HasFinishedApproved reports whether the booker has an approved booking
	// of the item that ended before now.
	HasFinishedApproved(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error)
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error)
	Update(ctx context.Context, ownerID, itemID string, patch Patch) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	GetView(ctx context.Context, viewerID, itemID string) (*View, error)
	ListViews(ctx context.Context, ownerID string, from, size int) ([]*View, error)
	Search(ctx context.Context, text string, from, size int) ([]*Item, error)
	AddComment(ctx context.Context, authorID, itemID, text string) (*Comment, error)
	ListByRequestIDs(ctx context.Context, requestIDs []string) ([]*Item, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}

type service struct {
	repo     Repository
	users    UserSource
	requests RequestSource
	bookings BookingSource
}

func NewService(repo Repository, users UserSource, requests RequestSource, bookings BookingSource) Service {
	return &service{
		repo:     repo,
		users:    users,
		requests: requests,
		bookings: bookings,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error) {
	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrBlankName
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrBlankDescription
	}

	if req.RequestID != nil {
		ok, err := s.requests.Exists(ctx, *req.RequestID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRequestNotFound
		}
	}

	it := &Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		OwnerID:     owner.ID,
		OwnerName:   owner.Name,
		RequestID:   req.RequestID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

// Update merges the patch into the stored item. Only the owner may update;
// nil patch fields leave the stored values unchanged.
func (s *service) Update(ctx context.Context, ownerID, itemID string, patch Patch) (*Item, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if it.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, ErrBlankName
		}
		it.Name = *patch.Name
	}
	if patch.Description != nil {
		if strings.TrimSpace(*patch.Description) == "" {
			return nil, ErrBlankDescription
		}
		it.Description = *patch.Description
	}
	if patch.Available != nil {
		it.Available = *patch.Available
	}

	if err := s.repo.Update(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

// GetView returns the item enriched with comments, and with last/next
// approved bookings when the viewer is the owner.
func (s *service) GetView(ctx context.Context, viewerID, itemID string) (*View, error) {
	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.repo.ListCommentsByItems(ctx, []string{it.ID})
	if err != nil {
		return nil, err
	}

	var approved map[string][]BookingRef
	if viewerID == it.OwnerID {
		approved, err = s.bookings.ApprovedByItems(ctx, []string{it.ID})
		if err != nil {
			return nil, err
		}
	}

	return buildViews([]*Item{it}, approved, comments, viewerID, time.Now().UTC())[0], nil
}

// ListViews returns the owner's items as views, newest listing first. Owning
// zero items is an error; a page beyond the owned items is just empty.
func (s *service) ListViews(ctx context.Context, ownerID string, from, size int) ([]*View, error) {
	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNoItems
	}

	limit, offset := request.PageParams{From: from, Size: size}.LimitOffset()
	items, err := s.repo.ListByOwner(ctx, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []*View{}, nil
	}

	itemIDs := make([]string, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID
	}

	approved, err := s.bookings.ApprovedByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}
	comments, err := s.repo.ListCommentsByItems(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	return buildViews(items, approved, comments, ownerID, time.Now().UTC()), nil
}

// Search finds available items matching the text in name or description.
// Blank text yields an empty result, not an error.
func (s *service) Search(ctx context.Context, text string, from, size int) ([]*Item, error) {
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}

	limit, offset := request.PageParams{From: from, Size: size}.LimitOffset()
	return s.repo.Search(ctx, text, limit, offset)
}

// AddComment attaches a comment to an item. The author must have an approved
// booking of the item that already ended.
func (s *service) AddComment(ctx context.Context, authorID, itemID, text string) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrBlankComment
	}

	it, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	eligible, err := s.bookings.HasFinishedApproved(ctx, authorID, it.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNotEligible
	}

	comment := &Comment{
		Text:       text,
		ItemID:     it.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
	}

	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *service) ListByRequestIDs(ctx context.Context, requestIDs []string) ([]*Item, error) {
	if len(requestIDs) == 0 {
		return []*Item{}, nil
	}
	return s.repo.ListByRequestIDs(ctx, requestIDs)
}

func (s *service) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	return s.repo.CountByOwner(ctx, ownerID)
}
