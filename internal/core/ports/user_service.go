package ports

import (
	"context"

	"github.com/minipress/minipress/internal/core/domain"
)

// CreateUserInput carries the fields required to create a user. Password is
// the plaintext form value; the service hashes it before it reaches the
// repository.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
}

// UpdateUserInput carries the mutable fields of an existing user.
type UpdateUserInput struct {
	ID       int64
	Username string
	Email    string
}

// UserService is the application boundary the handlers program against.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
