package delivery

import (
	"github.com/gin-gonic/gin"

	authdelivery "plek-backend/internal/auth/delivery"
	"plek-backend/internal/password/dto"
	"plek-backend/internal/password/usecase"
	"plek-backend/pkg/response"
)

// PasswordHandler handles password management HTTP requests
type PasswordHandler struct {
	passwordUsecase usecase.PasswordUsecase
}

// NewPasswordHandler creates a new PasswordHandler
func NewPasswordHandler(passwordUsecase usecase.PasswordUsecase) *PasswordHandler {
	return &PasswordHandler{
		passwordUsecase: passwordUsecase,
	}
}

// RequestReset starts the reset flow for an email address
// POST /v1/password/reset-request
func (h *PasswordHandler) RequestReset(c *gin.Context) {
	var req dto.ResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	message, err := h.passwordUsecase.RequestReset(c.Request.Context(), req.Email)
	if err != nil {
		response.Error(c, err, "Failed to request password reset")
		return
	}

	response.OK(c, nil, message)
}

// ResetPassword consumes a reset token and sets the new password
// POST /v1/password/reset
func (h *PasswordHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	message, err := h.passwordUsecase.ResetPassword(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		response.Error(c, err, "Failed to reset password")
		return
	}

	response.OK(c, nil, message)
}

// ChangePassword sets a new password for the authenticated caller
// POST /v1/password/change
func (h *PasswordHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString(authdelivery.ContextUserID)

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error(), "Invalid request body")
		return
	}

	message, err := h.passwordUsecase.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		response.Error(c, err, "Failed to change password")
		return
	}

	response.OK(c, nil, message)
}
