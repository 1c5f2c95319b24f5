package ports

// Cross-service result types shared between the use case layer and the
// HTTP layer live here so handlers do not depend on use case internals.

import "ogiribattle/src/core/domain"

// ScoreboardRow is a ranked scoreboard entry joined with the user's
// display name for presentation.
type ScoreboardRow struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	TotalScore  int    `json:"total_score"`
}

// Scoreboard bundles the recent-window and all-time rankings.
type Scoreboard struct {
	PromptLimit   int             `json:"prompt_limit"`
	IncludeClosed bool            `json:"include_closed"`
	Recent        []ScoreboardRow `json:"recent"`
	AllTime       []ScoreboardRow `json:"all_time"`
}

// PopularJoke is a joke ranked by total vote weight, with the counts
// the popular view displays next to it.
type PopularJoke struct {
	Joke         domain.Joke
	TotalScore   int
	VoteCount    int
	CommentCount int
}

// PromptDetail is a prompt with its jokes and each joke's score sum.
type PromptDetail struct {
	Prompt domain.Prompt
	Jokes  []JokeWithScore
}

// JokeWithScore pairs a joke with its current total vote weight.
type JokeWithScore struct {
	Joke       domain.Joke
	TotalScore int
	VoteCount  int
}
