package user

import (
	"net/http"
	"time"

	"github.com/lendit/lendit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrDuplicateEmail     = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrNameRequired       = apperror.New(http.StatusBadRequest, "name must not be blank")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email must not be blank")
)

// User represents a registered user. Items reference their owner and bookings
// their booker by user id; users are never embedded into other entities.
type User struct {
	ID           string // UUID assigned by the store
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Patch holds a partial user update. Nil fields keep the stored value.
type Patch struct {
	Name  *string
	Email *string
}
