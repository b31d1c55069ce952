package delivery

import (
	"github.com/gin-gonic/gin"

	authdelivery "plek-backend/internal/auth/delivery"
	"plek-backend/internal/user/dto"
	"plek-backend/internal/user/usecase"
	"plek-backend/pkg/response"
)

// UserHandler handles user resource HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// requireOwner rejects callers whose identity does not match the path
// uid. Returns false after writing the response.
func requireOwner(c *gin.Context) bool {
	if c.GetString(authdelivery.ContextUserID) != c.Param("uid") {
		response.Forbidden(c, "you can only modify your own profile", "Forbidden")
		return false
	}
	return true
}

// GetUsers returns all user records
// GET /v1/users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userUsecase.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err, "Failed to load users")
		return
	}

	response.OK(c, dto.UsersResponse{Users: users}, "")
}

// GetUser returns a single user record
// GET /v1/users/:uid
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		response.Error(c, err, "Failed to load user")
		return
	}
	if user == nil {
		response.NotFound(c, "user not found", "Failed to load user")
		return
	}

	response.OK(c, user, "")
}

// CreateUser writes a user record for an existing account
// POST /v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	user, err := h.userUsecase.Create(c.Request.Context(), &req, "", false)
	if err != nil {
		response.Error(c, err, "Failed to create user")
		return
	}

	response.Created(c, user, "User created successfully")
}

// UpdateUser applies a partial update to the caller's record
// PUT /v1/users/:uid
func (h *UserHandler) UpdateUser(c *gin.Context) {
	if !requireOwner(c) {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	user, err := h.userUsecase.Update(c.Request.Context(), c.Param("uid"), &req)
	if err != nil {
		response.Error(c, err, "Failed to update user")
		return
	}

	response.OK(c, user, "User updated successfully")
}

// DeleteUser removes the caller's record and account. The bare form
// deletes the caller; the :uid form additionally enforces ownership.
// DELETE /v1/users
// DELETE /v1/users/:uid
func (h *UserHandler) DeleteUser(c *gin.Context) {
	uid := c.Param("uid")
	if uid == "" {
		uid = c.GetString(authdelivery.ContextUserID)
	} else if !requireOwner(c) {
		return
	}

	if err := h.userUsecase.Delete(c.Request.Context(), uid); err != nil {
		response.Error(c, err, "Failed to delete user")
		return
	}

	response.OK(c, nil, "User deleted successfully")
}

// SetOnboarding flips the caller's onboarding flag
// POST /v1/users/:uid/onboarding
func (h *UserHandler) SetOnboarding(c *gin.Context) {
	if !requireOwner(c) {
		return
	}

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}
	if req.OnboardingCompleted == nil {
		response.BadRequest(c, "onboarding_completed is required", "Invalid request body")
		return
	}

	user, err := h.userUsecase.SetOnboarding(c.Request.Context(), c.Param("uid"), *req.OnboardingCompleted)
	if err != nil {
		response.Error(c, err, "Failed to update onboarding status")
		return
	}

	response.OK(c, user, "Onboarding status updated")
}

// UpdatePhoto replaces the caller's profile picture
// POST /v1/users/photo
func (h *UserHandler) UpdatePhoto(c *gin.Context) {
	uid := c.GetString(authdelivery.ContextUserID)

	var req dto.PhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	user, err := h.userUsecase.UpdatePhoto(c.Request.Context(), uid, req.Photo)
	if err != nil {
		response.Error(c, err, "Failed to update profile picture")
		return
	}

	response.OK(c, dto.PhotoResponse{User: user, ProfilePicture: user.ProfilePicture}, "Profile picture updated")
}
