package ports

import (
	"context"

	"github.com/esportscoach/coaching-platform/internal/core/domain"
)

// UserRepository defines persistence for registered accounts.
// Lookups return domain.ErrUserNotFound when no account matches.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// Create stores user and returns it with its assigned ID. A unique
	// constraint violation is reported as domain.ErrEmailInUse or
	// domain.ErrUsernameTaken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update persists the mutable fields of an existing account. Unique
	// constraint violations map as in Create; an unknown ID is
	// domain.ErrUserNotFound.
	Update(ctx context.Context, user *domain.User) error
}
