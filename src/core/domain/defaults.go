package domain

// DefaultVoteWeights is the standard weight mapping: ippon 3, waza-ari 2,
// yuko 1. Deployments override it through configuration.
var DefaultVoteWeights = VoteWeights{Ippon: 3, WazaAri: 2, Yuko: 1}

// DefaultRecentPromptLimit is how many of the most recent prompts the
// scoreboard window covers when the caller does not specify a limit.
const DefaultRecentPromptLimit = 10

// MaxJokeBodyLen is the maximum joke body length in runes; longer
// submissions are truncated at creation.
const MaxJokeBodyLen = 140

// MaxJokeTags is the maximum number of tags per joke; extras are dropped.
const MaxJokeTags = 5

// MaxPromptTagLen is the maximum prompt tag length in runes.
const MaxPromptTagLen = 20
