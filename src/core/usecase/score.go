package usecase

import (
	"context"
	"log/slog"
	"sort"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

// ScoreService is the score aggregator. It recomputes rankings from raw
// votes on every read instead of maintaining running counters; this keeps
// the ledger simple, avoids drift, and lets a weights change re-weight
// future votes without migration. Reads are linear in jokes and votes in
// the window, which is fine at single-community volume.
type ScoreService struct {
	repo ports.GameRepository
	log  *slog.Logger
}

func NewScoreService(repo ports.GameRepository, log *slog.Logger) *ScoreService {
	return &ScoreService{repo: repo, log: log}
}

// ComputeRecentUserScores ranks users by total vote weight earned on jokes
// under the promptLimit most recently created eligible prompts. Eligible
// means status active, plus closed when includeClosed is set; upcoming
// prompts are never eligible. The status filter applies before the
// recency cut.
func (s *ScoreService) ComputeRecentUserScores(ctx context.Context, promptLimit int, includeClosed bool) ([]domain.UserScore, error) {
	if promptLimit <= 0 {
		promptLimit = domain.DefaultRecentPromptLimit
	}
	statuses := []domain.PromptStatus{domain.PromptActive}
	if includeClosed {
		statuses = append(statuses, domain.PromptClosed)
	}

	prompts, err := s.repo.ListRecentPrompts(ctx, promptLimit, statuses)
	if err != nil {
		return nil, err
	}

	var jokes []domain.Joke
	for _, p := range prompts {
		pj, err := s.repo.ListJokesByPrompt(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		jokes = append(jokes, pj...)
	}

	return s.rankJokeAuthors(ctx, jokes)
}

// ComputeAllTimeUserScores ranks users over the entire history: every
// joke under every prompt, regardless of status.
func (s *ScoreService) ComputeAllTimeUserScores(ctx context.Context) ([]domain.UserScore, error) {
	jokes, err := s.repo.ListAllJokes(ctx)
	if err != nil {
		return nil, err
	}
	return s.rankJokeAuthors(ctx, jokes)
}

// rankJokeAuthors folds vote weights per joke, attributes each joke's sum
// to its author, and ranks authors by total. Jokes without an author
// contribute to nobody. Only users with a non-zero total appear.
//
// Ties are broken by user id ascending so rankings are deterministic
// across runs and storage backends.
func (s *ScoreService) rankJokeAuthors(ctx context.Context, jokes []domain.Joke) ([]domain.UserScore, error) {
	jokeIDs := make([]string, 0, len(jokes))
	for _, j := range jokes {
		jokeIDs = append(jokeIDs, j.ID)
	}

	votes, err := s.repo.ListVotesByJokeIDs(ctx, jokeIDs)
	if err != nil {
		return nil, err
	}

	scoreByJoke := make(map[string]int, len(jokes))
	for _, v := range votes {
		scoreByJoke[v.JokeID] += v.Weight
	}

	totals := make(map[string]int)
	for _, j := range jokes {
		if j.UserID == nil {
			continue
		}
		totals[*j.UserID] += scoreByJoke[j.ID]
	}

	scores := make([]domain.UserScore, 0, len(totals))
	for userID, total := range totals {
		if total == 0 {
			continue
		}
		scores = append(scores, domain.UserScore{UserID: userID, TotalScore: total})
	}
	sort.Slice(scores, func(i, k int) bool {
		if scores[i].TotalScore != scores[k].TotalScore {
			return scores[i].TotalScore > scores[k].TotalScore
		}
		return scores[i].UserID < scores[k].UserID
	})
	return scores, nil
}

// Scoreboard bundles the recent and all-time rankings joined with
// display names. Users missing from storage are shown by id; name
// resolution is presentation only and never affects totals.
func (s *ScoreService) Scoreboard(ctx context.Context, promptLimit int, includeClosed bool) (*ports.Scoreboard, error) {
	if promptLimit <= 0 {
		promptLimit = domain.DefaultRecentPromptLimit
	}
	recent, err := s.ComputeRecentUserScores(ctx, promptLimit, includeClosed)
	if err != nil {
		return nil, err
	}
	allTime, err := s.ComputeAllTimeUserScores(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName
	}

	return &ports.Scoreboard{
		PromptLimit:   promptLimit,
		IncludeClosed: includeClosed,
		Recent:        toRows(recent, names),
		AllTime:       toRows(allTime, names),
	}, nil
}

// PopularJokes ranks every joke by total vote weight, attaching vote and
// comment counts for display. Ordered by total descending, then newest
// first.
func (s *ScoreService) PopularJokes(ctx context.Context) ([]ports.PopularJoke, error) {
	jokes, err := s.repo.ListAllJokes(ctx)
	if err != nil {
		return nil, err
	}
	jokeIDs := make([]string, 0, len(jokes))
	for _, j := range jokes {
		jokeIDs = append(jokeIDs, j.ID)
	}
	votes, err := s.repo.ListVotesByJokeIDs(ctx, jokeIDs)
	if err != nil {
		return nil, err
	}

	scoreByJoke := make(map[string]int, len(jokes))
	countByJoke := make(map[string]int, len(jokes))
	for _, v := range votes {
		scoreByJoke[v.JokeID] += v.Weight
		countByJoke[v.JokeID]++
	}

	ranked := make([]ports.PopularJoke, 0, len(jokes))
	for _, j := range jokes {
		comments, err := s.repo.ListCommentsByJoke(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, ports.PopularJoke{
			Joke:         j,
			TotalScore:   scoreByJoke[j.ID],
			VoteCount:    countByJoke[j.ID],
			CommentCount: len(comments),
		})
	}
	sort.Slice(ranked, func(i, k int) bool {
		if ranked[i].TotalScore != ranked[k].TotalScore {
			return ranked[i].TotalScore > ranked[k].TotalScore
		}
		return ranked[i].Joke.CreatedAt.After(ranked[k].Joke.CreatedAt)
	})
	return ranked, nil
}

func toRows(scores []domain.UserScore, names map[string]string) []ports.ScoreboardRow {
	rows := make([]ports.ScoreboardRow, 0, len(scores))
	for i, sc := range scores {
		name, ok := names[sc.UserID]
		if !ok {
			name = sc.UserID
		}
		rows = append(rows, ports.ScoreboardRow{
			Rank:        i + 1,
			UserID:      sc.UserID,
			DisplayName: name,
			TotalScore:  sc.TotalScore,
		})
	}
	return rows
}
