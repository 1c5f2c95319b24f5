package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// MemoryRepository implements GameRepository with plain slices behind a
// single mutex. It backs local development and deterministic unit tests;
// the lock around the whole upsert gives the per-joke-per-identity
// serialization the vote ledger requires.
type MemoryRepository struct {
	mu       sync.RWMutex
	users    []domain.User
	prompts  []domain.Prompt
	jokes    []domain.Joke
	votes    []domain.Vote
	comments []domain.Comment
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Health(_ context.Context) error {
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}

// Users

func (r *MemoryRepository) ListUsers(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemoryRepository) GetUser(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, domain.NewNotFoundError("user")
}

func (r *MemoryRepository) CreateUser(_ context.Context, data ports.NewUser) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u := domain.User{
		ID:          uuid.New().String(),
		DisplayName: data.DisplayName,
		Handle:      data.Handle,
		AvatarURL:   data.AvatarURL,
		CreatedAt:   now(),
	}
	r.users = append(r.users, u)
	out := u
	return &out, nil
}

// Prompts

func (r *MemoryRepository) ListRecentPrompts(_ context.Context, limit int, statuses []domain.PromptStatus) ([]domain.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	allowed := make(map[domain.PromptStatus]bool, len(statuses))
	for _, s := range statuses {
		allowed[s] = true
	}

	var out []domain.Prompt
	for _, p := range r.prompts {
		if allowed[p.Status] {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		if !out[i].CreatedAt.Equal(out[k].CreatedAt) {
			return out[i].CreatedAt.After(out[k].CreatedAt)
		}
		return out[i].ID < out[k].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepository) ListAllPrompts(_ context.Context) ([]domain.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Prompt, len(r.prompts))
	copy(out, r.prompts)
	return out, nil
}

func (r *MemoryRepository) GetPrompt(_ context.Context, id string) (*domain.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.prompts {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, domain.NewNotFoundError("prompt")
}

func (r *MemoryRepository) AddPromptTag(_ context.Context, promptID, tag string) (*domain.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.prompts {
		if r.prompts[i].ID == promptID {
			r.prompts[i].Tags = append(r.prompts[i].Tags, tag)
			out := r.prompts[i]
			return &out, nil
		}
	}
	return nil, domain.NewNotFoundError("prompt")
}

// AddPrompt inserts a prompt directly. Used by the demo seed and tests;
// prompt authoring has no public endpoint in this service.
func (r *MemoryRepository) AddPrompt(p domain.Prompt) domain.Prompt {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now()
	}
	r.prompts = append(r.prompts, p)
	return p
}

// Jokes

func (r *MemoryRepository) ListJokesByPrompt(_ context.Context, promptID string) ([]domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Joke
	for _, j := range r.jokes {
		if j.PromptID == promptID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *MemoryRepository) ListAllJokes(_ context.Context) ([]domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Joke, len(r.jokes))
	copy(out, r.jokes)
	return out, nil
}

func (r *MemoryRepository) GetJoke(_ context.Context, id string) (*domain.Joke, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, j := range r.jokes {
		if j.ID == id {
			out := j
			return &out, nil
		}
	}
	return nil, domain.NewNotFoundError("joke")
}

func (r *MemoryRepository) CreateJoke(_ context.Context, data ports.NewJoke) (*domain.Joke, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := domain.Joke{
		ID:        uuid.New().String(),
		PromptID:  data.PromptID,
		UserID:    data.UserID,
		Body:      data.Body,
		Tags:      data.Tags,
		Source:    data.Source,
		CreatedAt: now(),
	}
	r.jokes = append(r.jokes, j)
	out := j
	return &out, nil
}

// Votes

func (r *MemoryRepository) ListVotesByJokeIDs(_ context.Context, jokeIDs []string) ([]domain.Vote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wanted := make(map[string]bool, len(jokeIDs))
	for _, id := range jokeIDs {
		wanted[id] = true
	}
	var out []domain.Vote
	for _, v := range r.votes {
		if wanted[v.JokeID] {
			out = append(out, v)
		}
	}
	return out, nil
}

// UpsertVote holds the store lock for the find-then-write, so concurrent
// casts for the same joke+identity resolve to exactly one stored vote.
func (r *MemoryRepository) UpsertVote(_ context.Context, data ports.VoteUpsert, weight int) (*domain.Vote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.votes {
		if r.votes[i].JokeID == data.JokeID && sameVoter(r.votes[i], data) {
			r.votes[i].Type = data.Type
			r.votes[i].Weight = weight
			out := r.votes[i]
			return &out, nil
		}
	}

	v := domain.Vote{
		ID:          uuid.New().String(),
		JokeID:      data.JokeID,
		VoterUserID: data.VoterUserID,
		GuestName:   data.GuestName,
		Type:        data.Type,
		Weight:      weight,
		CreatedAt:   now(),
	}
	r.votes = append(r.votes, v)
	out := v
	return &out, nil
}

// sameVoter matches votes by identity: user id when the request carries
// one, otherwise guest name against guest-only votes. The two identity
// kinds are never cross-matched.
func sameVoter(v domain.Vote, data ports.VoteUpsert) bool {
	if data.VoterUserID != nil {
		return v.VoterUserID != nil && *v.VoterUserID == *data.VoterUserID
	}
	if data.GuestName != nil {
		return v.VoterUserID == nil && v.GuestName != nil && *v.GuestName == *data.GuestName
	}
	return false
}

// Comments

func (r *MemoryRepository) ListCommentsByJoke(_ context.Context, jokeID string) ([]domain.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Comment
	for _, c := range r.comments {
		if c.JokeID == jokeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *MemoryRepository) CreateComment(_ context.Context, data ports.NewComment) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := domain.Comment{
		ID:        uuid.New().String(),
		JokeID:    data.JokeID,
		UserID:    data.UserID,
		GuestName: data.GuestName,
		Body:      data.Body,
		CreatedAt: now(),
	}
	r.comments = append(r.comments, c)
	out := c
	return &out, nil
}
