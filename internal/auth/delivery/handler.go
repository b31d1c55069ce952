package delivery

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"plek-backend/internal/auth/dto"
	"plek-backend/internal/auth/usecase"
	"plek-backend/pkg/apperr"
	"plek-backend/pkg/identity"
	"plek-backend/pkg/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login authenticates an email/password pair
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	result, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error(), "Login failed")
			return
		}
		log.Printf("[Auth] Login failed for %s: %v", req.Email, err)
		response.Error(c, err, "Login failed")
		return
	}

	response.OK(c, result, "Login successful")
}

// Register creates an account and its user record
// POST /v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	result, err := h.authUsecase.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			response.BadRequest(c, err.Error(), "Registration failed")
			return
		}
		response.Error(c, err, "Registration failed")
		return
	}

	response.Created(c, result, "Registration successful")
}

// Me returns the authenticated caller's user record
// GET /v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(ContextUserID)

	user, err := h.authUsecase.CurrentUser(c.Request.Context(), uid)
	if err != nil {
		response.Error(c, err, "Failed to load profile")
		return
	}

	response.OK(c, user, "")
}

// TokenLogin exchanges a provider ID token for the user record
// POST /v1/auth/token
func (h *AuthHandler) TokenLogin(c *gin.Context) {
	var req dto.TokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	user, err := h.authUsecase.TokenLogin(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			response.Error(c, err, "Login failed")
			return
		}
		response.Unauthorized(c, "invalid or expired token", "Login failed")
		return
	}

	response.OK(c, user, "Login successful")
}
