package dto

// CreateUserRequest is the payload for POST /v1/users.
type CreateUserRequest struct {
	DisplayName string  `json:"display_name" binding:"required"`
	Handle      *string `json:"handle"`
	AvatarURL   *string `json:"avatar_url"`
}

// CreateJokeRequest is the payload for POST /v1/jokes.
// UserID is optional: jokes imported from an external channel may be
// unattributed.
type CreateJokeRequest struct {
	PromptID string   `json:"prompt_id" binding:"required"`
	Body     string   `json:"body" binding:"required"`
	UserID   *string  `json:"user_id"`
	Tags     []string `json:"tags"`
}

// CastVoteRequest is the payload for POST /v1/votes.
// Exactly one of UserID or GuestName identifies the voter.
type CastVoteRequest struct {
	JokeID    string  `json:"joke_id" binding:"required"`
	Type      string  `json:"type" binding:"required"`
	UserID    *string `json:"user_id"`
	GuestName *string `json:"guest_name"`
}

// CreateCommentRequest is the payload for commenting on a joke.
type CreateCommentRequest struct {
	Body      string  `json:"body" binding:"required"`
	UserID    *string `json:"user_id"`
	GuestName *string `json:"guest_name"`
}

// AddPromptTagRequest is the payload for tagging a prompt.
type AddPromptTagRequest struct {
	Tag string `json:"tag" binding:"required"`
}
