package ports

import (
	"context"

	"github.com/minipress/minipress/internal/core/domain"
)

// UserRepository defines persistence operations for users. Every method is a
// single store round trip executed in the store's auto-commit scope.
type UserRepository interface {
	// Create inserts the user and returns the persisted record including the
	// generated id.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// List returns all users.
	List(ctx context.Context) ([]*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Update overwrites username and email of the row matching u.ID and
	// returns the committed row. Returns domain.ErrUserNotFound when the id
	// does not exist — never an insert.
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	// Delete removes the row if present. Deleting an absent id is a no-op.
	Delete(ctx context.Context, id int64) error
}
