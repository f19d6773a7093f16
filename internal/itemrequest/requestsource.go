package itemrequest

import (
	"context"
	"errors"
)

// ItemRequestSource adapts the request repository to the shape the item
// module needs for validating request references.
type ItemRequestSource struct {
	repo Repository
}

func NewItemRequestSource(repo Repository) *ItemRequestSource {
	return &ItemRequestSource{repo: repo}
}

func (s *ItemRequestSource) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
