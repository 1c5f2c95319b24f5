package usecase

import (
	"context"
	"log/slog"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// PromptService handles prompt listing, detail, and tagging.
type PromptService struct {
	repo  ports.GameRepository
	jokes *JokeService
	log   *slog.Logger
}

func NewPromptService(repo ports.GameRepository, jokes *JokeService, log *slog.Logger) *PromptService {
	return &PromptService{repo: repo, jokes: jokes, log: log}
}

// ListRecent returns the recent window of prompts: active ones, plus
// closed ones when includeClosed is set. Upcoming prompts never appear
// in the recent listing.
func (s *PromptService) ListRecent(ctx context.Context, limit int, includeClosed bool) ([]domain.Prompt, error) {
	if limit <= 0 {
		limit = domain.DefaultRecentPromptLimit
	}
	statuses := []domain.PromptStatus{domain.PromptActive}
	if includeClosed {
		statuses = append(statuses, domain.PromptClosed)
	}
	return s.repo.ListRecentPrompts(ctx, limit, statuses)
}

// ListAll returns every prompt regardless of status, for the archive view.
func (s *PromptService) ListAll(ctx context.Context) ([]domain.Prompt, error) {
	return s.repo.ListAllPrompts(ctx)
}

// Get returns a prompt with its jokes and per-joke score sums.
func (s *PromptService) Get(ctx context.Context, promptID string) (*ports.PromptDetail, error) {
	prompt, err := s.repo.GetPrompt(ctx, promptID)
	if err != nil {
		return nil, err
	}
	jokes, err := s.jokes.ListByPrompt(ctx, promptID)
	if err != nil {
		return nil, err
	}
	return &ports.PromptDetail{Prompt: *prompt, Jokes: jokes}, nil
}

// AddTag appends a tag to a prompt, truncated to the tag length limit.
func (s *PromptService) AddTag(ctx context.Context, promptID, tag string) (*domain.Prompt, error) {
	if promptID == "" {
		return nil, domain.NewValidationError("prompt_id", "prompt id is required")
	}
	if tag == "" {
		return nil, domain.NewValidationError("tag", "tag is required")
	}
	if r := []rune(tag); len(r) > domain.MaxPromptTagLen {
		tag = string(r[:domain.MaxPromptTagLen])
	}
	return s.repo.AddPromptTag(ctx, promptID, tag)
}
