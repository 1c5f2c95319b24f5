package domain

import "time"

// PromptStatus represents lifecycle of a prompt.
// Prompts never transition backward within the core.
type PromptStatus string

const (
	PromptUpcoming PromptStatus = "upcoming"
	PromptActive   PromptStatus = "active"
	PromptClosed   PromptStatus = "closed"
)

// PromptKind distinguishes text prompts from image prompts.
type PromptKind string

const (
	PromptText  PromptKind = "text"
	PromptImage PromptKind = "image"
)

// JokeSource records where a joke was submitted from.
type JokeSource string

const (
	JokeSourceApp  JokeSource = "app"
	JokeSourceLine JokeSource = "line"
)

// VoteType is one of the three weighted endorsement tiers,
// named after judo scoring.
type VoteType string

const (
	VoteIppon   VoteType = "ippon"
	VoteWazaAri VoteType = "waza_ari"
	VoteYuko    VoteType = "yuko"
)

// ValidVoteType reports whether t is one of the three recognized tiers.
func ValidVoteType(t VoteType) bool {
	return t == VoteIppon || t == VoteWazaAri || t == VoteYuko
}

// User represents a player.
type User struct {
	ID          string
	DisplayName string
	Handle      *string
	AvatarURL   *string
	CreatedAt   time.Time
}

// Prompt is a creative stimulus ("お題") users respond to.
// ImageURL is set only for image prompts.
type Prompt struct {
	ID        string
	Title     string
	Body      *string
	Kind      PromptKind
	ImageURL  *string
	Status    PromptStatus
	Tags      []string
	CreatedAt time.Time
}

// Joke is a humorous response ("ボケ") to exactly one prompt.
// UserID is nil for jokes imported from an external channel before
// being mapped to an account; such jokes never earn scoreboard points.
type Joke struct {
	ID        string
	PromptID  string
	UserID    *string
	Body      string
	Tags      []string
	Source    JokeSource
	CreatedAt time.Time
}

// Vote is one voter's endorsement of one joke. The voter is either a
// registered user (VoterUserID set) or a named guest (GuestName set).
//
// Weight is denormalized from the weights config at write time and is
// never recomputed for stored votes: changing the configuration
// re-weights future votes only.
type Vote struct {
	ID          string
	JokeID      string
	VoterUserID *string
	GuestName   *string
	Type        VoteType
	Weight      int
	CreatedAt   time.Time
}

// Comment is a free-text remark on a joke by a user or guest.
type Comment struct {
	ID        string
	JokeID    string
	UserID    *string
	GuestName *string
	Body      string
	CreatedAt time.Time
}

// UserScore is one scoreboard row: total vote weight earned by a user.
type UserScore struct {
	UserID     string `json:"user_id"`
	TotalScore int    `json:"total_score"`
}

// VoteWeights maps each vote type to its integer weight.
// Read-only during normal operation; tournament-specific tuning
// happens through configuration, not code.
type VoteWeights struct {
	Ippon   int
	WazaAri int
	Yuko    int
}

// WeightFor resolves the weight for a vote type.
// The boolean is false for unrecognized types; there is no default tier.
func (w VoteWeights) WeightFor(t VoteType) (int, bool) {
	switch t {
	case VoteIppon:
		return w.Ippon, true
	case VoteWazaAri:
		return w.WazaAri, true
	case VoteYuko:
		return w.Yuko, true
	default:
		return 0, false
	}
}
