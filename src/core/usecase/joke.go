package usecase

import (
	"context"
	"log/slog"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// JokeService handles joke submission and listing.
type JokeService struct {
	repo ports.GameRepository
	log  *slog.Logger
}

func NewJokeService(repo ports.GameRepository, log *slog.Logger) *JokeService {
	return &JokeService{repo: repo, log: log}
}

// Create submits a joke against an existing prompt. The body is
// truncated to the maximum length and at most the first five tags are
// kept, matching the submission form's limits. A nil user id is allowed
// for imported jokes.
func (s *JokeService) Create(ctx context.Context, promptID string, userID *string, body string, tags []string) (*domain.Joke, error) {
	if promptID == "" {
		return nil, domain.NewValidationError("prompt_id", "prompt id is required")
	}
	if body == "" {
		return nil, domain.NewValidationError("body", "joke body is required")
	}
	if _, err := s.repo.GetPrompt(ctx, promptID); err != nil {
		return nil, err
	}

	if r := []rune(body); len(r) > domain.MaxJokeBodyLen {
		body = string(r[:domain.MaxJokeBodyLen])
	}
	if len(tags) > domain.MaxJokeTags {
		tags = tags[:domain.MaxJokeTags]
	}

	joke, err := s.repo.CreateJoke(ctx, ports.NewJoke{
		PromptID: promptID,
		UserID:   normalizeOptional(userID),
		Body:     body,
		Tags:     tags,
		Source:   domain.JokeSourceApp,
	})
	if err != nil {
		return nil, err
	}
	s.log.Debug("joke created", "joke_id", joke.ID, "prompt_id", promptID)
	return joke, nil
}

// ListByPrompt returns a prompt's jokes with their current score sums,
// as shown on the prompt detail page.
func (s *JokeService) ListByPrompt(ctx context.Context, promptID string) ([]ports.JokeWithScore, error) {
	if _, err := s.repo.GetPrompt(ctx, promptID); err != nil {
		return nil, err
	}
	jokes, err := s.repo.ListJokesByPrompt(ctx, promptID)
	if err != nil {
		return nil, err
	}
	return s.withScores(ctx, jokes)
}

func (s *JokeService) withScores(ctx context.Context, jokes []domain.Joke) ([]ports.JokeWithScore, error) {
	ids := make([]string, 0, len(jokes))
	for _, j := range jokes {
		ids = append(ids, j.ID)
	}
	votes, err := s.repo.ListVotesByJokeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	score := make(map[string]int, len(jokes))
	count := make(map[string]int, len(jokes))
	for _, v := range votes {
		score[v.JokeID] += v.Weight
		count[v.JokeID]++
	}
	out := make([]ports.JokeWithScore, 0, len(jokes))
	for _, j := range jokes {
		out = append(out, ports.JokeWithScore{Joke: j, TotalScore: score[j.ID], VoteCount: count[j.ID]})
	}
	return out, nil
}
