package ports

import (
	"context"

	"github.com/minipress/minipress/internal/core/domain"
)

// PostRepository defines persistence operations for posts. Semantics mirror
// UserRepository: one round trip per call, not-found on update of a missing
// id, idempotent delete.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	// Update overwrites title and content of the row matching p.ID; the
	// user_id reference is fixed at creation.
	Update(ctx context.Context, p *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}
