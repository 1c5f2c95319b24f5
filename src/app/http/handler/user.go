package handler

import (
	"github.com/gin-gonic/gin"

	"ogiribattle/src/app/http/dto"
	"ogiribattle/src/app/http/response"
	"ogiribattle/src/app/middleware"
	"ogiribattle/src/core/usecase"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService *usecase.UserService
}

func NewUserHandler(userService *usecase.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users.
// GET /v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, userJSON(u))
	}
	response.OK(c, gin.H{"users": out})
}

// Get returns one user by id.
// GET /v1/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, gin.H{"user": userJSON(*user)})
}

// Create registers a new user.
// POST /v1/users
func (h *UserHandler) Create(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "display_name is required", requestID)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req.DisplayName, req.Handle, req.AvatarURL)
	if err != nil {
		response.FromDomainError(c, err, requestID)
		return
	}
	response.Created(c, gin.H{"user": userJSON(*user)})
}
