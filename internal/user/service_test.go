package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	GetByIDFunc    func(ctx context.Context, id string) (*User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*User, error)
	CreateFunc     func(ctx context.Context, u *User) error
	UpdateFunc     func(ctx context.Context, u *User) error
	ListFunc       func(ctx context.Context) ([]*User, error)
	DeleteFunc     func(ctx context.Context, id string) error
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*User, error) {
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return f.GetByEmailFunc(ctx, email)
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error {
	return f.CreateFunc(ctx, u)
}

func (f *fakeRepo) Update(ctx context.Context, u *User) error {
	return f.UpdateFunc(ctx, u)
}

func (f *fakeRepo) List(ctx context.Context) ([]*User, error) {
	return f.ListFunc(ctx)
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFunc(ctx, id)
}

// fakeHasher marks hashes with a prefix so tests can assert without bcrypt cost.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func TestRegister(t *testing.T) {
	t.Run("normalizes and stores", func(t *testing.T) {
		var created *User
		repo := &fakeRepo{
			CreateFunc: func(ctx context.Context, u *User) error {
				u.ID = "user-1"
				created = u
				return nil
			},
		}
		svc := NewService(repo, fakeHasher{})

		u, err := svc.Register(context.Background(), "  Alice ", " Alice@Example.COM ", "secret")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
		assert.Equal(t, "Alice", created.Name)
		assert.Equal(t, "alice@example.com", created.Email)
		assert.Equal(t, "hashed:secret", created.PasswordHash)
	})

	t.Run("blank email", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, fakeHasher{})

		_, err := svc.Register(context.Background(), "Alice", "   ", "secret")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("blank name", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, fakeHasher{})

		_, err := svc.Register(context.Background(), "  ", "alice@example.com", "secret")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("duplicate email surfaces as conflict", func(t *testing.T) {
		repo := &fakeRepo{
			CreateFunc: func(ctx context.Context, u *User) error {
				return ErrDuplicateEmail
			},
		}
		svc := NewService(repo, fakeHasher{})

		_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})
}

func TestLogin(t *testing.T) {
	stored := &User{ID: "user-1", Email: "alice@example.com", PasswordHash: "hashed:secret"}
	repo := &fakeRepo{
		GetByEmailFunc: func(ctx context.Context, email string) (*User, error) {
			if email == stored.Email {
				return stored, nil
			}
			return nil, ErrNotFound
		},
	}
	svc := NewService(repo, fakeHasher{})

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Login(context.Background(), "Alice@Example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "user-1", u.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "bob@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice@example.com", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateUser(t *testing.T) {
	str := func(s string) *string { return &s }

	stored := func() *User {
		return &User{ID: "user-1", Name: "Alice", Email: "alice@example.com"}
	}

	repoWith := func(u *User) *fakeRepo {
		return &fakeRepo{
			GetByIDFunc: func(ctx context.Context, id string) (*User, error) {
				if u != nil && id == u.ID {
					return u, nil
				}
				return nil, ErrNotFound
			},
			UpdateFunc: func(ctx context.Context, u *User) error { return nil },
		}
	}

	t.Run("nil fields keep stored values", func(t *testing.T) {
		svc := NewService(repoWith(stored()), fakeHasher{})

		u, err := svc.Update(context.Background(), "user-1", Patch{Name: str("Alicia")})
		require.NoError(t, err)
		assert.Equal(t, "Alicia", u.Name)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("email is normalized", func(t *testing.T) {
		svc := NewService(repoWith(stored()), fakeHasher{})

		u, err := svc.Update(context.Background(), "user-1", Patch{Email: str(" New@Example.COM ")})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", u.Email)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		svc := NewService(repoWith(stored()), fakeHasher{})

		_, err := svc.Update(context.Background(), "user-1", Patch{Name: str("  ")})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewService(repoWith(nil), fakeHasher{})

		_, err := svc.Update(context.Background(), "user-1", Patch{Name: str("Alicia")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
