package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
	"ogiribattle/src/core/usecase"
	"ogiribattle/src/infra/logger"
	"ogiribattle/src/infra/repo"
)

type scoreFixture struct {
	repo   *repo.MemoryRepository
	scores *usecase.ScoreService
	users  map[string]string // display name -> id
}

func newScoreFixture(t *testing.T, names ...string) *scoreFixture {
	t.Helper()
	r := repo.NewMemoryRepository()
	f := &scoreFixture{
		repo:   r,
		scores: usecase.NewScoreService(r, logger.Discard()),
		users:  make(map[string]string),
	}
	for _, name := range names {
		u, err := r.CreateUser(context.Background(), ports.NewUser{DisplayName: name})
		require.NoError(t, err)
		f.users[name] = u.ID
	}
	return f
}

func (f *scoreFixture) addPrompt(status domain.PromptStatus, age time.Duration) domain.Prompt {
	return f.repo.AddPrompt(domain.Prompt{
		Title:     "お題",
		Kind:      domain.PromptText,
		Status:    status,
		CreatedAt: time.Now().UTC().Add(-age),
	})
}

func (f *scoreFixture) addJoke(t *testing.T, promptID string, author *string) domain.Joke {
	t.Helper()
	j, err := f.repo.CreateJoke(context.Background(), ports.NewJoke{
		PromptID: promptID,
		UserID:   author,
		Body:     "ボケ",
		Source:   domain.JokeSourceApp,
	})
	require.NoError(t, err)
	return *j
}

// addVote writes directly through the repository so tests control the
// stored weight without going through the ledger.
func (f *scoreFixture) addVote(t *testing.T, jokeID, guest string, weight int) {
	t.Helper()
	_, err := f.repo.UpsertVote(context.Background(), ports.VoteUpsert{
		JokeID:    jokeID,
		GuestName: &guest,
		Type:      domain.VoteIppon,
	}, weight)
	require.NoError(t, err)
}

func TestRecentScoresAttribution(t *testing.T) {
	f := newScoreFixture(t, "A", "B")
	ctx := context.Background()

	p := f.addPrompt(domain.PromptActive, 0)
	a := f.users["A"]
	b := f.users["B"]

	j1 := f.addJoke(t, p.ID, &a)
	j2 := f.addJoke(t, p.ID, &b)
	j3 := f.addJoke(t, p.ID, nil)

	f.addVote(t, j1.ID, "g1", 3)
	f.addVote(t, j1.ID, "g2", 2)
	f.addVote(t, j2.ID, "g1", 2)
	f.addVote(t, j3.ID, "g1", 10)

	scores, err := f.scores.ComputeRecentUserScores(ctx, 1, false)
	require.NoError(t, err)

	// The authorless joke's 10 points land nowhere.
	require.Len(t, scores, 2)
	assert.Equal(t, domain.UserScore{UserID: a, TotalScore: 5}, scores[0])
	assert.Equal(t, domain.UserScore{UserID: b, TotalScore: 2}, scores[1])
}

func TestRecentScoresWindowBoundary(t *testing.T) {
	f := newScoreFixture(t, "A", "B")
	ctx := context.Background()

	newer := f.addPrompt(domain.PromptActive, time.Hour)
	older := f.addPrompt(domain.PromptActive, 2*time.Hour)

	a := f.users["A"]
	b := f.users["B"]
	jNew := f.addJoke(t, newer.ID, &a)
	jOld := f.addJoke(t, older.ID, &b)

	f.addVote(t, jNew.ID, "g1", 1)
	f.addVote(t, jOld.ID, "g1", 9)

	// Only the newest prompt is in a window of one, even though the
	// older prompt has the bigger score.
	scores, err := f.scores.ComputeRecentUserScores(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, a, scores[0].UserID)
	assert.Equal(t, 1, scores[0].TotalScore)
}

func TestRecentScoresStatusFilterBeforeRecencyCut(t *testing.T) {
	f := newScoreFixture(t, "A", "B")
	ctx := context.Background()

	closedNewer := f.addPrompt(domain.PromptClosed, time.Hour)
	activeOlder := f.addPrompt(domain.PromptActive, 2*time.Hour)

	a := f.users["A"]
	b := f.users["B"]
	jClosed := f.addJoke(t, closedNewer.ID, &a)
	jActive := f.addJoke(t, activeOlder.ID, &b)

	f.addVote(t, jClosed.ID, "g1", 3)
	f.addVote(t, jActive.ID, "g1", 2)

	// Without includeClosed the closed prompt is invisible, so the
	// older active prompt wins the window of one.
	scores, err := f.scores.ComputeRecentUserScores(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, b, scores[0].UserID)

	// With includeClosed, recency decides and the closed prompt wins.
	scores, err = f.scores.ComputeRecentUserScores(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, a, scores[0].UserID)
}

func TestRecentScoresExcludeUpcoming(t *testing.T) {
	f := newScoreFixture(t, "A")
	ctx := context.Background()

	upcoming := f.addPrompt(domain.PromptUpcoming, 0)
	a := f.users["A"]
	j := f.addJoke(t, upcoming.ID, &a)
	f.addVote(t, j.ID, "g1", 3)

	scores, err := f.scores.ComputeRecentUserScores(ctx, 10, true)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestRecentScoresZeroTotalsOmitted(t *testing.T) {
	f := newScoreFixture(t, "A", "B")
	ctx := context.Background()

	p := f.addPrompt(domain.PromptActive, 0)
	a := f.users["A"]
	b := f.users["B"]
	jA := f.addJoke(t, p.ID, &a)
	f.addJoke(t, p.ID, &b) // B's joke receives no votes

	f.addVote(t, jA.ID, "g1", 2)

	scores, err := f.scores.ComputeRecentUserScores(ctx, 10, false)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, a, scores[0].UserID)
}

func TestScoresTieBreakByUserID(t *testing.T) {
	f := newScoreFixture(t, "A", "B", "C")
	ctx := context.Background()

	p := f.addPrompt(domain.PromptActive, 0)
	for _, name := range []string{"A", "B", "C"} {
		id := f.users[name]
		j := f.addJoke(t, p.ID, &id)
		f.addVote(t, j.ID, "g1", 4)
	}

	scores, err := f.scores.ComputeRecentUserScores(ctx, 10, false)
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.True(t, scores[0].UserID < scores[1].UserID)
	assert.True(t, scores[1].UserID < scores[2].UserID)
}

func TestAllTimeScoresIgnoreWindowAndStatus(t *testing.T) {
	f := newScoreFixture(t, "A", "B")
	ctx := context.Background()

	active := f.addPrompt(domain.PromptActive, time.Hour)
	closed := f.addPrompt(domain.PromptClosed, 100*time.Hour)

	a := f.users["A"]
	b := f.users["B"]
	jActive := f.addJoke(t, active.ID, &a)
	jClosed := f.addJoke(t, closed.ID, &b)

	f.addVote(t, jActive.ID, "g1", 1)
	f.addVote(t, jClosed.ID, "g1", 7)

	recent, err := f.scores.ComputeRecentUserScores(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, a, recent[0].UserID)

	allTime, err := f.scores.ComputeAllTimeUserScores(ctx)
	require.NoError(t, err)
	require.Len(t, allTime, 2)
	assert.Equal(t, b, allTime[0].UserID)
	assert.Equal(t, 7, allTime[0].TotalScore)
	assert.Equal(t, a, allTime[1].UserID)
}

func TestScoreboardJoinsDisplayNames(t *testing.T) {
	f := newScoreFixture(t, "A")
	ctx := context.Background()

	p := f.addPrompt(domain.PromptActive, 0)
	a := f.users["A"]
	j := f.addJoke(t, p.ID, &a)
	f.addVote(t, j.ID, "g1", 3)

	board, err := f.scores.Scoreboard(ctx, 10, false)
	require.NoError(t, err)
	require.Len(t, board.Recent, 1)
	assert.Equal(t, 1, board.Recent[0].Rank)
	assert.Equal(t, "A", board.Recent[0].DisplayName)
	assert.Equal(t, 3, board.Recent[0].TotalScore)
	require.Len(t, board.AllTime, 1)
	assert.Equal(t, 10, board.PromptLimit)
}

func TestPopularJokesRanking(t *testing.T) {
	f := newScoreFixture(t, "A")
	ctx := context.Background()

	p := f.addPrompt(domain.PromptActive, 0)
	a := f.users["A"]
	low := f.addJoke(t, p.ID, &a)
	high := f.addJoke(t, p.ID, nil)

	f.addVote(t, low.ID, "g1", 1)
	f.addVote(t, high.ID, "g1", 3)
	f.addVote(t, high.ID, "g2", 2)

	_, err := f.repo.CreateComment(ctx, ports.NewComment{
		JokeID:    high.ID,
		GuestName: strptr("g1"),
		Body:      "www",
	})
	require.NoError(t, err)

	ranked, err := f.scores.PopularJokes(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	// Authorless jokes still rank on the popular view; only the
	// scoreboard excludes them.
	assert.Equal(t, high.ID, ranked[0].Joke.ID)
	assert.Equal(t, 5, ranked[0].TotalScore)
	assert.Equal(t, 2, ranked[0].VoteCount)
	assert.Equal(t, 1, ranked[0].CommentCount)
	assert.Equal(t, low.ID, ranked[1].Joke.ID)
}
