package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
	"github.com/oksasatya/go-ddd-auth/internal/domain/valueobject"
)

var (
	// ErrNotFound is returned by lookups that match no user.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned by Create when the email is already owned.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the user persistence operations.
// Implementations must be safe for concurrent use. Create is a single atomic
// write and must report a violated email uniqueness constraint as ErrDuplicateEmail.
type UserRepository interface {
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, email valueobject.Email, username valueobject.Username, hash valueobject.PasswordHash) (*entity.User, error)
}
