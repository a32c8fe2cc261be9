package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aoyagi/todo-list-api/internal/dto"
	apierrors "github.com/aoyagi/todo-list-api/internal/errors"
	"github.com/aoyagi/todo-list-api/internal/middleware"
	"github.com/aoyagi/todo-list-api/internal/response"
	"github.com/aoyagi/todo-list-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user and returns a session token.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.authService.Register(services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully", dto.AuthResponse{
		Token: result.Token,
		User:  dto.ToUserDTO(*result.User),
	})
}

// Login authenticates a user and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", dto.AuthResponse{
		Token: result.Token,
		User:  dto.ToUserDTO(*result.User),
	})
}

// GetCurrentUser returns the authenticated user's public fields.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, apierrors.Unauthenticated("Not authorized, no token"))
		return
	}

	// Re-resolve so a user deleted after token issuance yields 404.
	current, err := h.authService.GetUser(user.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved successfully", dto.ToUserDTO(*current))
}
