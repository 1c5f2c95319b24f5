package usecase

import (
	"context"
	"log/slog"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// CommentService handles comments on jokes.
type CommentService struct {
	repo ports.GameRepository
	log  *slog.Logger
}

func NewCommentService(repo ports.GameRepository, log *slog.Logger) *CommentService {
	return &CommentService{repo: repo, log: log}
}

func (s *CommentService) ListByJoke(ctx context.Context, jokeID string) ([]domain.Comment, error) {
	if _, err := s.repo.GetJoke(ctx, jokeID); err != nil {
		return nil, err
	}
	return s.repo.ListCommentsByJoke(ctx, jokeID)
}

// Create adds a comment by a user or a named guest. Like votes, a
// comment needs exactly one identity; user identity wins when both are
// supplied.
func (s *CommentService) Create(ctx context.Context, jokeID string, userID, guestName *string, body string) (*domain.Comment, error) {
	userID = normalizeOptional(userID)
	guestName = normalizeOptional(guestName)

	if jokeID == "" {
		return nil, domain.NewValidationError("joke_id", "joke id is required")
	}
	if body == "" {
		return nil, domain.NewValidationError("body", "comment body is required")
	}
	if userID == nil && guestName == nil {
		return nil, domain.NewValidationError("author", "either user_id or guest_name is required")
	}
	if _, err := s.repo.GetJoke(ctx, jokeID); err != nil {
		return nil, err
	}
	return s.repo.CreateComment(ctx, ports.NewComment{
		JokeID:    jokeID,
		UserID:    userID,
		GuestName: guestName,
		Body:      body,
	})
}
