package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/minipress/minipress/internal/core/domain"
)

// PostRepository persists posts in the posts table. The user_id column is
// written as given — nothing here checks that the referenced user exists.
type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (title, content, user_id) VALUES (?, ?, ?)`,
		p.Title, p.Content, p.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert post id: %w", err)
	}

	return r.findByID(ctx, id)
}

func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	posts := []*domain.Post{}
	err := r.db.SelectContext(ctx, &posts,
		`SELECT id, title, content, user_id FROM posts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findByID(ctx, id)
}

func (r *PostRepository) findByID(ctx context.Context, id int64) (*domain.Post, error) {
	var p domain.Post
	err := r.db.GetContext(ctx, &p,
		`SELECT id, title, content, user_id FROM posts WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &p, nil
}

// Update overwrites title and content; user_id never changes after creation.
// A missing id is reported as domain.ErrPostNotFound.
func (r *PostRepository) Update(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ? WHERE id = ?`,
		p.Title, p.Content, p.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update post rows: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrPostNotFound
	}

	return r.findByID(ctx, p.ID)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
