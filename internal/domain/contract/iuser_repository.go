package contract

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/PetSymptomTracker/internal/domain/entity"
)

// Errors every IUserRepository backend reports in place of driver errors.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already taken")
)

// IUserRepository is the persistence boundary for accounts. It holds no
// business rules. Username and email uniqueness must be enforced by the
// backing store itself, case-insensitively.
type IUserRepository interface {
	// FindByID retrieves a user by id or returns ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByUsername matches the username case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	// Save inserts the user when it is unknown to the store and updates it
	// otherwise. An id is assigned on first insert when user.ID is empty.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)
	// DeleteByID removes the record permanently.
	DeleteByID(ctx context.Context, id string) error
}
