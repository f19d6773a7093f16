package itemrequest

import (
	"context"
	"strings"

	"github.com/lendit/lendit-backend/internal/item"
	"github.com/lendit/lendit-backend/internal/user"
)

// UserSource resolves users. Implemented by user.Service.
type UserSource interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// ItemSource lists the items answering requests. Implemented by item.Service.
type ItemSource interface {
	ListByRequestIDs(ctx context.Context, requestIDs []string) ([]*item.Item, error)
}

type Service interface {
	Add(ctx context.Context, userID, description string) (*Request, error)
	ListOwn(ctx context.Context, userID string) ([]*View, error)
	ListOthers(ctx context.Context, userID string, from, size int) ([]*View, error)
	GetByID(ctx context.Context, userID, requestID string) (*View, error)
}

type service struct {
	repo  Repository
	users UserSource
	items ItemSource
}

func NewService(repo Repository, users UserSource, items ItemSource) Service {
	return &service{
		repo:  repo,
		users: users,
		items: items,
	}
}

func (s *service) Add(ctx context.Context, userID, description string) (*Request, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}

	req := &Request{
		Description:   description,
		RequestorID:   u.ID,
		RequestorName: u.Name,
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	return req, nil
}

// ListOwn returns the user's own requests, newest first, with answered items.
func (s *service) ListOwn(ctx context.Context, userID string) ([]*View, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.attachItems(ctx, requests)
}

// ListOthers returns requests made by other users, newest first, paged.
func (s *service) ListOthers(ctx context.Context, userID string, from, size int) ([]*View, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListExcludingRequestor(ctx, userID, from, size)
	if err != nil {
		return nil, err
	}

	return s.attachItems(ctx, requests)
}

func (s *service) GetByID(ctx context.Context, userID, requestID string) (*View, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	views, err := s.attachItems(ctx, []*Request{req})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// attachItems resolves answered items for a batch of requests in one query,
// grouped by request id.
func (s *service) attachItems(ctx context.Context, requests []*Request) ([]*View, error) {
	ids := make([]string, len(requests))
	for i, r := range requests {
		ids[i] = r.ID
	}

	var byRequest map[string][]*item.Item
	if len(ids) > 0 {
		items, err := s.items.ListByRequestIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		byRequest = make(map[string][]*item.Item)
		for _, it := range items {
			if it.RequestID == nil {
				continue
			}
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	views := make([]*View, 0, len(requests))
	for _, r := range requests {
		items := byRequest[r.ID]
		if items == nil {
			items = []*item.Item{}
		}
		views = append(views, &View{Request: *r, Items: items})
	}

	return views, nil
}
