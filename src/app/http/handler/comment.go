package handler

import (
	"github.com/gin-gonic/gin"

	"ogiribattle/src/app/http/dto"
	"ogiribattle/src/app/http/response"
	"ogiribattle/src/app/middleware"
	"ogiribattle/src/core/usecase"
)

// CommentHandler handles comments on jokes.
type CommentHandler struct {
	commentService *usecase.CommentService
}

func NewCommentHandler(commentService *usecase.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// ListByJoke returns a joke's comments.
// GET /v1/jokes/:joke_id/comments
func (h *CommentHandler) ListByJoke(c *gin.Context) {
	comments, err := h.commentService.ListByJoke(c.Request.Context(), c.Param("joke_id"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out := make([]gin.H, 0, len(comments))
	for _, cm := range comments {
		out = append(out, commentJSON(cm))
	}
	response.OK(c, gin.H{"comments": out})
}

// Create adds a comment to a joke.
// POST /v1/jokes/:joke_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "body is required", requestID)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), c.Param("joke_id"), req.UserID, req.GuestName, req.Body)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	response.Created(c, gin.H{"comment": commentJSON(*comment)})
}
