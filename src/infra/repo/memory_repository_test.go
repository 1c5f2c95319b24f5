package repo

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
)

func strptr(s string) *string { return &s }

func seedJoke(t *testing.T, r *MemoryRepository) domain.Joke {
	t.Helper()
	p := r.AddPrompt(domain.Prompt{Title: "お題", Kind: domain.PromptText, Status: domain.PromptActive})
	j, err := r.CreateJoke(context.Background(), ports.NewJoke{
		PromptID: p.ID,
		Body:     "ボケ",
		Source:   domain.JokeSourceApp,
	})
	require.NoError(t, err)
	return *j
}

func TestUpsertVoteCreateThenUpdate(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	joke := seedJoke(t, r)

	first, err := r.UpsertVote(ctx, ports.VoteUpsert{
		JokeID:    joke.ID,
		GuestName: strptr("guest"),
		Type:      domain.VoteYuko,
	}, 1)
	require.NoError(t, err)

	second, err := r.UpsertVote(ctx, ports.VoteUpsert{
		JokeID:    joke.ID,
		GuestName: strptr("guest"),
		Type:      domain.VoteIppon,
	}, 3)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.Equal(t, domain.VoteIppon, second.Type)
	assert.Equal(t, 3, second.Weight)

	votes, err := r.ListVotesByJokeIDs(ctx, []string{joke.ID})
	require.NoError(t, err)
	assert.Len(t, votes, 1)
}

func TestUpsertVoteIdentityKindsNeverCrossMatch(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	joke := seedJoke(t, r)

	// A vote that carries both identities is keyed by the user id.
	_, err := r.UpsertVote(ctx, ports.VoteUpsert{
		JokeID:      joke.ID,
		VoterUserID: strptr("user-1"),
		GuestName:   strptr("Bob"),
		Type:        domain.VoteIppon,
	}, 3)
	require.NoError(t, err)

	// A guest named Bob is a different voter and gets a separate record.
	_, err = r.UpsertVote(ctx, ports.VoteUpsert{
		JokeID:    joke.ID,
		GuestName: strptr("Bob"),
		Type:      domain.VoteYuko,
	}, 1)
	require.NoError(t, err)

	votes, err := r.ListVotesByJokeIDs(ctx, []string{joke.ID})
	require.NoError(t, err)
	assert.Len(t, votes, 2)
}

func TestUpsertVoteConcurrentSameKeySerialized(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	joke := seedJoke(t, r)

	types := []struct {
		t domain.VoteType
		w int
	}{
		{domain.VoteIppon, 3},
		{domain.VoteWazaAri, 2},
		{domain.VoteYuko, 1},
	}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tw := types[i%len(types)]
			_, err := r.UpsertVote(ctx, ports.VoteUpsert{
				JokeID:    joke.ID,
				GuestName: strptr("guest"),
				Type:      tw.t,
			}, tw.w)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	// All casts collapse onto one record whose type/weight pair is
	// consistent with exactly one of the inputs.
	votes, err := r.ListVotesByJokeIDs(ctx, []string{joke.ID})
	require.NoError(t, err)
	require.Len(t, votes, 1)
	w, ok := domain.DefaultVoteWeights.WeightFor(votes[0].Type)
	require.True(t, ok)
	assert.Equal(t, w, votes[0].Weight)
}

func TestListRecentPromptsFilterOrderLimit(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	base := time.Now().UTC()

	r.AddPrompt(domain.Prompt{Title: "closed-new", Status: domain.PromptClosed, CreatedAt: base})
	r.AddPrompt(domain.Prompt{Title: "active-mid", Status: domain.PromptActive, CreatedAt: base.Add(-time.Hour)})
	r.AddPrompt(domain.Prompt{Title: "active-old", Status: domain.PromptActive, CreatedAt: base.Add(-2 * time.Hour)})
	r.AddPrompt(domain.Prompt{Title: "upcoming", Status: domain.PromptUpcoming, CreatedAt: base.Add(time.Hour)})

	active, err := r.ListRecentPrompts(ctx, 10, []domain.PromptStatus{domain.PromptActive})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "active-mid", active[0].Title)
	assert.Equal(t, "active-old", active[1].Title)

	both, err := r.ListRecentPrompts(ctx, 2, []domain.PromptStatus{domain.PromptActive, domain.PromptClosed})
	require.NoError(t, err)
	require.Len(t, both, 2)
	assert.Equal(t, "closed-new", both[0].Title)
	assert.Equal(t, "active-mid", both[1].Title)
}

func TestGetMissingRecordsReturnNotFound(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	_, err := r.GetJoke(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
	_, err = r.GetPrompt(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
	_, err = r.GetUser(ctx, "missing")
	assert.True(t, domain.IsNotFound(err))
	_, err = r.AddPromptTag(ctx, "missing", "tag")
	assert.True(t, domain.IsNotFound(err))
}

func TestSeedDemoShape(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()
	require.NoError(t, SeedDemo(ctx, r))

	users, err := r.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)

	prompts, err := r.ListAllPrompts(ctx)
	require.NoError(t, err)
	assert.Len(t, prompts, 12)

	active, err := r.ListRecentPrompts(ctx, 100, []domain.PromptStatus{domain.PromptActive})
	require.NoError(t, err)
	require.Len(t, active, 1)

	jokes, err := r.ListJokesByPrompt(ctx, active[0].ID)
	require.NoError(t, err)
	assert.Len(t, jokes, 25)
}
