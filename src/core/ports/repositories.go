// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"ogiribattle/src/core/domain"
)

// Repository is the base interface for all repositories.
// Concrete repositories should embed this and add entity-specific methods.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// VoteUpsert carries a vote-cast request into the vote ledger.
// Exactly one of VoterUserID or GuestName identifies the voter;
// when both are set the user identity wins.
type VoteUpsert struct {
	JokeID      string
	VoterUserID *string
	GuestName   *string
	Type        domain.VoteType
}

// NewUser carries a user creation request.
type NewUser struct {
	DisplayName string
	Handle      *string
	AvatarURL   *string
}

// NewJoke carries a joke creation request. Body and tags are assumed
// already bounded by the caller (JokeService enforces the limits).
type NewJoke struct {
	PromptID string
	UserID   *string
	Body     string
	Tags     []string
	Source   domain.JokeSource
}

// NewComment carries a comment creation request.
type NewComment struct {
	JokeID    string
	UserID    *string
	GuestName *string
	Body      string
}

// UserRepository lists, fetches, and creates users. It is used to resolve
// display names for presentation; scoring correctness does not depend on it.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, data NewUser) (*domain.User, error)
}

// PromptRepository provides prompt listings for the recent window and
// the archive views.
type PromptRepository interface {
	// ListRecentPrompts returns up to limit prompts whose status is in
	// statuses, newest first. The status filter applies before the
	// recency cut, never after.
	ListRecentPrompts(ctx context.Context, limit int, statuses []domain.PromptStatus) ([]domain.Prompt, error)
	ListAllPrompts(ctx context.Context) ([]domain.Prompt, error)
	GetPrompt(ctx context.Context, id string) (*domain.Prompt, error)
	AddPromptTag(ctx context.Context, promptID, tag string) (*domain.Prompt, error)
}

// JokeRepository lists and creates jokes.
type JokeRepository interface {
	ListJokesByPrompt(ctx context.Context, promptID string) ([]domain.Joke, error)
	ListAllJokes(ctx context.Context) ([]domain.Joke, error)
	GetJoke(ctx context.Context, id string) (*domain.Joke, error)
	CreateJoke(ctx context.Context, data NewJoke) (*domain.Joke, error)
}

// VoteRepository stores votes and answers the aggregator's bulk reads.
type VoteRepository interface {
	// ListVotesByJokeIDs returns every vote targeting any of the given jokes.
	ListVotesByJokeIDs(ctx context.Context, jokeIDs []string) ([]domain.Vote, error)

	// UpsertVote creates or updates the single vote held by the request's
	// voter identity on the target joke, storing the given weight.
	//
	// Implementations must serialize concurrent upserts for the same
	// joke+identity key so the stored vote reflects exactly one of the
	// inputs. An update keeps the original vote ID and creation time.
	UpsertVote(ctx context.Context, data VoteUpsert, weight int) (*domain.Vote, error)
}

// CommentRepository lists and creates comments on jokes.
type CommentRepository interface {
	ListCommentsByJoke(ctx context.Context, jokeID string) ([]domain.Comment, error)
	CreateComment(ctx context.Context, data NewComment) (*domain.Comment, error)
}

// GameRepository is the composite repository covering all storage the
// application needs. Both the Postgres and the in-memory adapter
// implement it in full.
type GameRepository interface {
	Repository
	UserRepository
	PromptRepository
	JokeRepository
	VoteRepository
	CommentRepository
}
