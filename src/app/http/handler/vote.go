package handler

import (
	"github.com/gin-gonic/gin"

	"ogiribattle/src/app/http/dto"
	"ogiribattle/src/app/http/response"
	"ogiribattle/src/app/middleware"
	"ogiribattle/src/core/domain"
	"ogiribattle/src/core/ports"
	"ogiribattle/src/core/usecase"
)

// VoteHandler handles vote casting.
type VoteHandler struct {
	voteService *usecase.VoteService
}

func NewVoteHandler(voteService *usecase.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// Cast records or overwrites the caller's vote on a joke.
// POST /v1/votes
func (h *VoteHandler) Cast(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "joke_id and type are required", requestID)
		return
	}

	// Reject unknown types at the boundary, before the ledger sees them.
	if !domain.ValidVoteType(domain.VoteType(req.Type)) {
		response.ValidationError(c, "type", "type must be one of ippon, waza_ari, yuko", requestID)
		return
	}
	if emptyOptional(req.UserID) && emptyOptional(req.GuestName) {
		response.ValidationError(c, "voter", "either user_id or guest_name is required", requestID)
		return
	}

	vote, err := h.voteService.Cast(c.Request.Context(), ports.VoteUpsert{
		JokeID:      req.JokeID,
		VoterUserID: req.UserID,
		GuestName:   req.GuestName,
		Type:        domain.VoteType(req.Type),
	})
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}

	response.OK(c, gin.H{"vote": voteJSON(*vote)})
}

func emptyOptional(s *string) bool {
	return s == nil || *s == ""
}
