package usecase

import (
	"context"
	"log/slog"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// UserService handles user listing and creation.
type UserService struct {
	repo ports.GameRepository
	log  *slog.Logger
}

func NewUserService(repo ports.GameRepository, log *slog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUser(ctx, userID)
}

// Create registers a new user. Display name is required; handle and
// avatar are optional profile fields.
func (s *UserService) Create(ctx context.Context, displayName string, handle, avatarURL *string) (*domain.User, error) {
	if displayName == "" {
		return nil, domain.NewValidationError("display_name", "display name is required")
	}
	user, err := s.repo.CreateUser(ctx, ports.NewUser{
		DisplayName: displayName,
		Handle:      normalizeOptional(handle),
		AvatarURL:   normalizeOptional(avatarURL),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", "user_id", user.ID, "display_name", user.DisplayName)
	return user, nil
}
