package handler

import (
	"github.com/gin-gonic/gin"

	"ogiribattle/src/app/http/response"
	"ogiribattle/src/app/middleware"
	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/usecase"
)

// ScoreboardHandler serves the ranked score views.
type ScoreboardHandler struct {
	scoreService *usecase.ScoreService
	promptLimit  int
}

func NewScoreboardHandler(scoreService *usecase.ScoreService, promptLimit int) *ScoreboardHandler {
	if promptLimit <= 0 {
		promptLimit = domain.DefaultRecentPromptLimit
	}
	return &ScoreboardHandler{scoreService: scoreService, promptLimit: promptLimit}
}

// Scoreboard returns the recent-window and all-time rankings.
// GET /v1/scoreboard?include_closed=1&limit=10
func (h *ScoreboardHandler) Scoreboard(c *gin.Context) {
	includeClosed := parseBoolQuery(c, "include_closed")
	limit := parseLimitQuery(c, "limit", h.promptLimit)

	board, err := h.scoreService.Scoreboard(c.Request.Context(), limit, includeClosed)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, board)
}

// Popular returns all jokes ranked by total vote weight.
// GET /v1/jokes/popular
func (h *ScoreboardHandler) Popular(c *gin.Context) {
	ranked, err := h.scoreService.PopularJokes(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}

	out := make([]gin.H, 0, len(ranked))
	for _, pj := range ranked {
		entry := jokeJSON(pj.Joke)
		entry["total_score"] = pj.TotalScore
		entry["vote_count"] = pj.VoteCount
		entry["comment_count"] = pj.CommentCount
		out = append(out, entry)
	}
	response.OK(c, gin.H{"jokes": out})
}
