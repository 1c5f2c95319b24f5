package usecase

import (
	"context"
	"log/slog"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// VoteService is the vote ledger. It validates a vote-cast request and
// produces a durable, idempotent-per-voter vote record through the
// vote repository.
type VoteService struct {
	repo    ports.GameRepository
	weights domain.VoteWeights
	log     *slog.Logger
}

func NewVoteService(repo ports.GameRepository, weights domain.VoteWeights, log *slog.Logger) *VoteService {
	return &VoteService{repo: repo, weights: weights, log: log}
}

// Weights returns the weight mapping the ledger stamps onto votes.
func (s *VoteService) Weights() domain.VoteWeights {
	return s.weights
}

// Cast records or overwrites the calling identity's vote on a joke.
//
// A voter holds at most one vote per joke; re-voting overwrites the prior
// vote's type and weight in place, keeping its ID and creation time.
// Voting for one's own joke fails with a self-vote rejection and leaves
// the vote set untouched. The returned vote is the post-write state.
func (s *VoteService) Cast(ctx context.Context, in ports.VoteUpsert) (*domain.Vote, error) {
	in.VoterUserID = normalizeOptional(in.VoterUserID)
	in.GuestName = normalizeOptional(in.GuestName)

	if in.JokeID == "" {
		return nil, domain.NewValidationError("joke_id", "joke id is required")
	}
	if !domain.ValidVoteType(in.Type) {
		return nil, domain.NewInvalidVoteTypeError(in.Type)
	}
	if in.VoterUserID == nil && in.GuestName == nil {
		return nil, domain.NewValidationError("voter", "either user_id or guest_name is required")
	}

	joke, err := s.repo.GetJoke(ctx, in.JokeID)
	if err != nil {
		return nil, err
	}
	if joke.UserID != nil && in.VoterUserID != nil && *joke.UserID == *in.VoterUserID {
		return nil, domain.NewSelfVoteError(joke.ID)
	}

	// Unknown types were rejected above, so the lookup cannot miss.
	weight, ok := s.weights.WeightFor(in.Type)
	if !ok {
		return nil, domain.NewInvalidVoteTypeError(in.Type)
	}

	vote, err := s.repo.UpsertVote(ctx, in, weight)
	if err != nil {
		return nil, err
	}

	s.log.Debug("vote recorded",
		"joke_id", vote.JokeID,
		"type", string(vote.Type),
		"weight", vote.Weight,
	)
	return vote, nil
}

// normalizeOptional maps empty strings to absent so the identity
// matching rule never treats "" as a real guest name or user id.
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
