package ports

import (
	"context"

	"github.com/minipress/minipress/internal/core/domain"
)

// CreatePostInput carries the fields required to create a post. UserID is
// taken as submitted — existence of the referenced user is not checked.
type CreatePostInput struct {
	Title   string
	Content string
	UserID  int64
}

// UpdatePostInput carries the mutable fields of an existing post.
type UpdatePostInput struct {
	ID      int64
	Title   string
	Content string
}

// PostService is the application boundary the handlers program against.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}
