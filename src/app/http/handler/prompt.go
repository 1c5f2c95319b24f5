package handler

import (
	"github.com/gin-gonic/gin"

	"ogiribattle/src/app/http/dto"
	"ogiribattle/src/app/http/response"
	"ogiribattle/src/app/middleware"
	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/usecase"
)

// PromptHandler handles prompt listing, detail, and tagging.
type PromptHandler struct {
	promptService *usecase.PromptService
	promptLimit   int
}

func NewPromptHandler(promptService *usecase.PromptService, promptLimit int) *PromptHandler {
	if promptLimit <= 0 {
		promptLimit = domain.DefaultRecentPromptLimit
	}
	return &PromptHandler{promptService: promptService, promptLimit: promptLimit}
}

// ListRecent returns the recent prompt window.
// GET /v1/prompts?limit=10&include_closed=1
func (h *PromptHandler) ListRecent(c *gin.Context) {
	limit := parseLimitQuery(c, "limit", h.promptLimit)
	includeClosed := parseBoolQuery(c, "include_closed")

	prompts, err := h.promptService.ListRecent(c.Request.Context(), limit, includeClosed)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out := make([]gin.H, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, promptJSON(p))
	}
	response.OK(c, gin.H{"prompts": out})
}

// ListAll returns every prompt, for the archive view.
// GET /v1/prompts/all
func (h *PromptHandler) ListAll(c *gin.Context) {
	prompts, err := h.promptService.ListAll(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out := make([]gin.H, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, promptJSON(p))
	}
	response.OK(c, gin.H{"prompts": out})
}

// Get returns a prompt with its jokes and per-joke scores.
// GET /v1/prompts/:prompt_id
func (h *PromptHandler) Get(c *gin.Context) {
	detail, err := h.promptService.Get(c.Request.Context(), c.Param("prompt_id"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	jokes := make([]gin.H, 0, len(detail.Jokes))
	for _, j := range detail.Jokes {
		jokes = append(jokes, jokeWithScoreJSON(j))
	}
	response.OK(c, gin.H{
		"prompt": promptJSON(detail.Prompt),
		"jokes":  jokes,
	})
}

// AddTag appends a tag to a prompt.
// POST /v1/prompts/:prompt_id/tags
func (h *PromptHandler) AddTag(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.AddPromptTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "tag is required", requestID)
		return
	}

	prompt, err := h.promptService.AddTag(c.Request.Context(), c.Param("prompt_id"), req.Tag)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	response.OK(c, gin.H{"prompt": promptJSON(*prompt)})
}
