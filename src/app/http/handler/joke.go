package handler

import (
	"github.com/gin-gonic/gin"

	"ogiribattle/src/app/http/dto"
	"ogiribattle/src/app/http/response"
	"ogiribattle/src/app/middleware"
	"ogiribattle/src/core/usecase"
)

// JokeHandler handles joke submission and listing.
type JokeHandler struct {
	jokeService *usecase.JokeService
}

func NewJokeHandler(jokeService *usecase.JokeService) *JokeHandler {
	return &JokeHandler{jokeService: jokeService}
}

// Create submits a joke against a prompt.
// POST /v1/jokes
func (h *JokeHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "prompt_id and body are required", requestID)
		return
	}

	joke, err := h.jokeService.Create(c.Request.Context(), req.PromptID, req.UserID, req.Body, req.Tags)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	response.Created(c, gin.H{"joke": jokeJSON(*joke)})
}

// ListByPrompt returns a prompt's jokes with scores.
// GET /v1/prompts/:prompt_id/jokes
func (h *JokeHandler) ListByPrompt(c *gin.Context) {
	jokes, err := h.jokeService.ListByPrompt(c.Request.Context(), c.Param("prompt_id"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out := make([]gin.H, 0, len(jokes))
	for _, j := range jokes {
		out = append(out, jokeWithScoreJSON(j))
	}
	response.OK(c, gin.H{"jokes": out})
}
