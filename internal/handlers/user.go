package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskstack/user-task-api/internal/dto"
	"github.com/taskstack/user-task-api/internal/httpx"
	"github.com/taskstack/user-task-api/internal/services"
)

// UserHandler coordinates the account HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// isValidID reports whether a claimed identifier matches the store's
// id format. Handlers check this before issuing any query.
func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// Signup registers a new user.
func (h *UserHandler) Signup(c *gin.Context) {
	type SignupRequest struct {
		FirstName string `json:"first_name" binding:"required,min=3,max=255"`
		LastName  string `json:"last_name" binding:"required,min=3,max=255"`
		Email     string `json:"email" binding:"required,email,min=6,max=255"`
		Password  string `json:"password" binding:"required,min=6,max=255"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Signup(services.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	httpx.OK(c, "User created successfully", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// Login authenticates a user. The response carries the profile only;
// no session or token is issued.
func (h *UserHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	httpx.OK(c, "User logged in successfully", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// ListUsers returns every user, password excluded.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		respondUserError(c, err)
		return
	}

	httpx.OK(c, "Users fetched successfully", gin.H{
		"users": dto.ToUserDTOs(users),
	})
}

// GetUser returns a user by id, password excluded.
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	httpx.OK(c, "User found", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

// UpdateUser overwrites the whole user record. Fields omitted from the
// request would be written as empty, so all of them are required.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}

	type UpdateUserRequest struct {
		FirstName string `json:"first_name" binding:"required,min=3,max=255"`
		LastName  string `json:"last_name" binding:"required,min=3,max=255"`
		Email     string `json:"email" binding:"required,email,min=6,max=255"`
		Password  string `json:"password" binding:"required,min=6,max=255"`
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.BadRequest(c, "Invalid request body")
		return
	}

	err := h.userService.UpdateUser(id, services.UpdateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	httpx.OK(c, "User updated successfully", nil)
}

// DeleteUser removes a user and returns the removed record.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		httpx.InvalidID(c, "Invalid user id")
		return
	}

	user, err := h.userService.DeleteUser(id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	httpx.OK(c, "User deleted successfully", gin.H{
		"user": dto.ToUserDTO(*user),
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		httpx.Conflict(c, "User already exists")
	case errors.Is(err, services.ErrUserNotExist):
		httpx.Unauthorized(c, "User does not exist")
	case errors.Is(err, services.ErrInvalidPassword):
		httpx.Unauthorized(c, "Invalid password")
	case errors.Is(err, services.ErrUserNotFound):
		httpx.NotFound(c, "User not found")
	default:
		httpx.Internal(c, "Internal server error", err)
	}
}
