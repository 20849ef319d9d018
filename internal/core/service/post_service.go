package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/minipress/minipress/internal/core/domain"
	"github.com/minipress/minipress/internal/core/ports"
)

// PostService implements post management on top of a PostRepository.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// Create persists a new post. The user_id reference is stored as submitted —
// no lookup against the users table happens here.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if input.Title == "" || input.Content == "" || input.UserID == 0 {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("post_id", created.ID).Int64("user_id", created.UserID).Msg("post created")
	return created, nil
}

func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.repo.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites title and content of an existing post. A missing id
// yields domain.ErrPostNotFound with no write attempted.
func (s *PostService) Update(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	if input.Title == "" || input.Content == "" {
		return nil, domain.ErrInvalidInput
	}

	post, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content

	updated, err := s.repo.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("post_id", updated.ID).Msg("post updated")
	return updated, nil
}

// Delete removes a post by id, a silent no-op when the id does not exist.
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}
