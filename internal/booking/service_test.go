package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendit/lendit-backend/internal/item"
	"github.com/lendit/lendit-backend/internal/user"
)

type fakeRepo struct {
	CreateFunc              func(ctx context.Context, b *Booking) error
	GetByIDFunc             func(ctx context.Context, id string) (*Booking, error)
	ListByStateFunc         func(ctx context.Context, subjectID string, role Role, state State, now time.Time, from, size int) ([]*Booking, int, error)
	DecideIfWaitingFunc     func(ctx context.Context, id string, status Status) (bool, error)
	ApprovedForItemsFunc    func(ctx context.Context, itemIDs []string) ([]*Booking, error)
	HasFinishedApprovedFunc func(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error)
}

func (f *fakeRepo) Create(ctx context.Context, b *Booking) error {
	return f.CreateFunc(ctx, b)
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeRepo) ListByState(ctx context.Context, subjectID string, role Role, state State, now time.Time, from, size int) ([]*Booking, int, error) {
	return f.ListByStateFunc(ctx, subjectID, role, state, now, from, size)
}

func (f *fakeRepo) DecideIfWaiting(ctx context.Context, id string, status Status) (bool, error) {
	return f.DecideIfWaitingFunc(ctx, id, status)
}

func (f *fakeRepo) ApprovedForItems(ctx context.Context, itemIDs []string) ([]*Booking, error) {
	return f.ApprovedForItemsFunc(ctx, itemIDs)
}

func (f *fakeRepo) HasFinishedApproved(ctx context.Context, bookerID, itemID string, now time.Time) (bool, error) {
	return f.HasFinishedApprovedFunc(ctx, bookerID, itemID, now)
}

type fakeItems struct {
	GetByIDFunc      func(ctx context.Context, id string) (*item.Item, error)
	CountByOwnerFunc func(ctx context.Context, ownerID string) (int, error)
}

func (f *fakeItems) GetByID(ctx context.Context, id string) (*item.Item, error) {
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeItems) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	return f.CountByOwnerFunc(ctx, ownerID)
}

type fakeUsers struct {
	GetByIDFunc func(ctx context.Context, id string) (*user.User, error)
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*user.User, error) {
	return f.GetByIDFunc(ctx, id)
}

var (
	bookerStub = &user.User{ID: "booker-1", Name: "Alice"}
	itemStub   = &item.Item{ID: "item-1", Name: "Drill", Available: true, OwnerID: "owner-1"}
)

func usersWith(u *user.User) *fakeUsers {
	return &fakeUsers{
		GetByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
			if u != nil && id == u.ID {
				return u, nil
			}
			return nil, user.ErrNotFound
		},
	}
}

func itemsWith(it *item.Item) *fakeItems {
	return &fakeItems{
		GetByIDFunc: func(ctx context.Context, id string) (*item.Item, error) {
			if it != nil && id == it.ID {
				return it, nil
			}
			return nil, item.ErrNotFound
		},
	}
}

func TestCreate(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	t.Run("creates a waiting booking", func(t *testing.T) {
		repo := &fakeRepo{
			CreateFunc: func(ctx context.Context, b *Booking) error {
				b.ID = "booking-1"
				return nil
			},
		}
		svc := NewService(repo, itemsWith(itemStub), usersWith(bookerStub))

		b, err := svc.Create(context.Background(), "booker-1", "item-1", start, end)
		require.NoError(t, err)
		assert.Equal(t, "booking-1", b.ID)
		assert.Equal(t, StatusWaiting, b.Status)
		assert.Equal(t, "item-1", b.ItemID)
		assert.Equal(t, "Drill", b.ItemName)
		assert.Equal(t, "booker-1", b.BookerID)
		assert.Equal(t, "owner-1", b.OwnerID)
	})

	t.Run("unknown booker", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, itemsWith(itemStub), usersWith(nil))

		_, err := svc.Create(context.Background(), "booker-1", "item-1", start, end)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, itemsWith(nil), usersWith(bookerStub))

		_, err := svc.Create(context.Background(), "booker-1", "item-1", start, end)
		assert.ErrorIs(t, err, item.ErrNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		unavailable := &item.Item{ID: "item-1", Available: false, OwnerID: "owner-1"}
		svc := NewService(&fakeRepo{}, itemsWith(unavailable), usersWith(bookerStub))

		_, err := svc.Create(context.Background(), "booker-1", "item-1", start, end)
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("owner cannot book own item", func(t *testing.T) {
		owner := &user.User{ID: "owner-1", Name: "Bob"}
		svc := NewService(&fakeRepo{}, itemsWith(itemStub), usersWith(owner))

		_, err := svc.Create(context.Background(), "owner-1", "item-1", start, end)
		assert.ErrorIs(t, err, ErrSelfBooking)
	})

	t.Run("availability is checked before ownership", func(t *testing.T) {
		ownUnavailable := &item.Item{ID: "item-1", Available: false, OwnerID: "owner-1"}
		owner := &user.User{ID: "owner-1", Name: "Bob"}
		svc := NewService(&fakeRepo{}, itemsWith(ownUnavailable), usersWith(owner))

		_, err := svc.Create(context.Background(), "owner-1", "item-1", start, end)
		assert.ErrorIs(t, err, ErrItemUnavailable)
	})

	t.Run("end before start", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, itemsWith(itemStub), usersWith(bookerStub))

		_, err := svc.Create(context.Background(), "booker-1", "item-1", end, start)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("equal start and end", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, itemsWith(itemStub), usersWith(bookerStub))

		_, err := svc.Create(context.Background(), "booker-1", "item-1", start, start)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestDecide(t *testing.T) {
	waiting := func() *Booking {
		return &Booking{ID: "booking-1", OwnerID: "owner-1", BookerID: "booker-1", Status: StatusWaiting}
	}

	repoWith := func(b *Booking, decided bool) *fakeRepo {
		return &fakeRepo{
			GetByIDFunc: func(ctx context.Context, id string) (*Booking, error) {
				if b != nil && id == b.ID {
					return b, nil
				}
				return nil, ErrNotFound
			},
			DecideIfWaitingFunc: func(ctx context.Context, id string, status Status) (bool, error) {
				return decided, nil
			},
		}
	}

	t.Run("approve", func(t *testing.T) {
		var gotStatus Status
		repo := repoWith(waiting(), true)
		repo.DecideIfWaitingFunc = func(ctx context.Context, id string, status Status) (bool, error) {
			gotStatus = status
			return true, nil
		}
		svc := NewService(repo, itemsWith(itemStub), usersWith(bookerStub))

		b, err := svc.Decide(context.Background(), "owner-1", "booking-1", true)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, b.Status)
		assert.Equal(t, StatusApproved, gotStatus)
	})

	t.Run("reject", func(t *testing.T) {
		svc := NewService(repoWith(waiting(), true), itemsWith(itemStub), usersWith(bookerStub))

		b, err := svc.Decide(context.Background(), "owner-1", "booking-1", false)
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, b.Status)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(repoWith(nil, false), itemsWith(itemStub), usersWith(bookerStub))

		_, err := svc.Decide(context.Background(), "owner-1", "booking-1", true)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("already decided", func(t *testing.T) {
		decided := waiting()
		decided.Status = StatusApproved
		svc := NewService(repoWith(decided, false), itemsWith(itemStub), usersWith(bookerStub))

		_, err := svc.Decide(context.Background(), "owner-1", "booking-1", true)
		assert.ErrorIs(t, err, ErrAlreadyDecided)
	})

	t.Run("stranger deciding a decided booking sees the conflict, not forbidden", func(t *testing.T) {
		decided := waiting()
		decided.Status = StatusRejected
		svc := NewService(repoWith(decided, false), itemsWith(itemStub), usersWith(bookerStub))

		_, err := svc.Decide(context.Background(), "someone-else", "booking-1", true)
		assert.ErrorIs(t, err, ErrAlreadyDecided)
	})

	t.Run("not the owner", func(t *testing.T) {
		svc := NewService(repoWith(waiting(), true), itemsWith(itemStub), usersWith(bookerStub))

		_, err := svc.Decide(context.Background(), "someone-else", "booking-1", true)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("losing a concurrent decide", func(t *testing.T) {
		// The booking read WAITING but another decide landed first; the
		// conditional write reports no row changed.
		svc := NewService(repoWith(waiting(), false), itemsWith(itemStub), usersWith(bookerStub))

		_, err := svc.Decide(context.Background(), "owner-1", "booking-1", true)
		assert.ErrorIs(t, err, ErrAlreadyDecided)
	})
}

func TestGetByID(t *testing.T) {
	stored := &Booking{ID: "booking-1", BookerID: "booker-1", OwnerID: "owner-1"}
	repo := &fakeRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*Booking, error) {
			if id == stored.ID {
				return stored, nil
			}
			return nil, ErrNotFound
		},
	}
	svc := NewService(repo, itemsWith(itemStub), usersWith(bookerStub))

	t.Run("booker may view", func(t *testing.T) {
		b, err := svc.GetByID(context.Background(), "booker-1", "booking-1")
		require.NoError(t, err)
		assert.Equal(t, stored, b)
	})

	t.Run("owner may view", func(t *testing.T) {
		b, err := svc.GetByID(context.Background(), "owner-1", "booking-1")
		require.NoError(t, err)
		assert.Equal(t, stored, b)
	})

	t.Run("stranger may not", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "someone-else", "booking-1")
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "booker-1", "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestList(t *testing.T) {
	items := func(count int) *fakeItems {
		f := itemsWith(itemStub)
		f.CountByOwnerFunc = func(ctx context.Context, ownerID string) (int, error) {
			return count, nil
		}
		return f
	}

	t.Run("unsupported state fails before any lookup", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, items(1), usersWith(bookerStub))

		_, _, err := svc.List(context.Background(), "booker-1", RoleBooker, "FINISHED", 0, 20)
		assert.ErrorIs(t, err, ErrUnsupportedState)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, items(1), usersWith(nil))

		_, _, err := svc.List(context.Background(), "booker-1", RoleBooker, "ALL", 0, 20)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("owner without items", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, items(0), usersWith(bookerStub))

		_, _, err := svc.List(context.Background(), "booker-1", RoleOwner, "ALL", 0, 20)
		assert.ErrorIs(t, err, ErrNoItems)
	})

	t.Run("booker without items is fine", func(t *testing.T) {
		var gotState State
		repo := &fakeRepo{
			ListByStateFunc: func(ctx context.Context, subjectID string, role Role, state State, now time.Time, from, size int) ([]*Booking, int, error) {
				gotState = state
				return []*Booking{{ID: "booking-1"}}, 1, nil
			},
		}
		svc := NewService(repo, items(0), usersWith(bookerStub))

		bookings, total, err := svc.List(context.Background(), "booker-1", RoleBooker, "past", 0, 20)
		require.NoError(t, err)
		assert.Len(t, bookings, 1)
		assert.Equal(t, 1, total)
		assert.Equal(t, StatePast, gotState)
	})
}
