package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minipress/minipress/internal/core/domain"
	"github.com/minipress/minipress/internal/core/ports"
)

// UserService implements user management on top of a UserRepository.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Create persists a new user. The submitted password is bcrypt-hashed before
// storage; the plaintext never reaches the repository.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Update overwrites username and email of an existing user. The target must
// exist: a missing id yields domain.ErrUserNotFound with no write attempted.
// The password is never touched here.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Email = input.Email

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes a user by id. Deleting an id that does not exist is a
// silent no-op. Posts referencing the user are left in place.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
