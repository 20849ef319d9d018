package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/minipress/minipress/internal/core/domain"
)

// UserRepository persists users in the users table.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user row and re-reads it so the caller receives what
// the store actually committed, generated id included.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, email, password) VALUES (?, ?, ?)`,
		u.Username, u.Email, u.Password,
	)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user id: %w", err)
	}

	return r.findByID(ctx, id)
}

// List returns all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	users := []*domain.User{}
	err := r.db.SelectContext(ctx, &users,
		`SELECT id, username, email, password FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID returns domain.ErrUserNotFound when no row matches.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findByID(ctx, id)
}

func (r *UserRepository) findByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.GetContext(ctx, &u,
		`SELECT id, username, email, password FROM users WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// Update overwrites username and email of the row matching u.ID and returns
// the committed row. A zero affected-row count means the id does not exist;
// that is reported as domain.ErrUserNotFound rather than turned into an
// insert.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET username = ?, email = ? WHERE id = ?`,
		u.Username, u.Email, u.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update user rows: %w", err)
	}
	if rows == 0 {
		return nil, domain.ErrUserNotFound
	}

	return r.findByID(ctx, u.ID)
}

// Delete removes the row if present. Deleting an absent id is a no-op, not
// an error.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
