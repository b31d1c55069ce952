package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	passdomain "plek-backend/internal/password/domain"
	"plek-backend/internal/password/repository"
	"plek-backend/pkg/apperr"
	"plek-backend/pkg/identity"
	"plek-backend/pkg/validator"
)

// neutralResetMessage never reveals whether an account exists.
const neutralResetMessage = "If an account exists with this email, a reset link has been sent."

const (
	resetTokenLength = 32
	tokenAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// passwordUsecase implements PasswordUsecase
type passwordUsecase struct {
	resetRepo    repository.PasswordResetRepository
	idp          IdentityProvider
	mailer       ResetMailer
	notifier     Notifier
	users        UserGetter
	resetBaseURL string
	tokenExpiry  time.Duration
}

// NewPasswordUsecase creates a new instance of passwordUsecase
func NewPasswordUsecase(resetRepo repository.PasswordResetRepository, idp IdentityProvider, mailer ResetMailer, notifier Notifier, users UserGetter, resetBaseURL string, tokenExpiry time.Duration) PasswordUsecase {
	return &passwordUsecase{
		resetRepo:    resetRepo,
		idp:          idp,
		mailer:       mailer,
		notifier:     notifier,
		users:        users,
		resetBaseURL: resetBaseURL,
		tokenExpiry:  tokenExpiry,
	}
}

func (u *passwordUsecase) RequestReset(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", apperr.Validation("email is required")
	}
	email = strings.ToLower(email)

	account, err := u.idp.AccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			return neutralResetMessage, nil
		}
		return "", err
	}

	// Keep a single active token per account.
	existing, err := u.resetRepo.GetActiveByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return neutralResetMessage, nil
	}

	token, err := generateResetToken(resetTokenLength)
	if err != nil {
		return "", err
	}

	reset := &passdomain.PasswordReset{
		Email:     email,
		UserID:    account.UID,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(u.tokenExpiry),
	}
	if err := u.resetRepo.Create(ctx, reset); err != nil {
		return "", err
	}

	resetLink := fmt.Sprintf("%s?token=%s", u.resetBaseURL, token)
	if err := u.mailer.SendPasswordResetEmail(ctx, email, resetLink, account.DisplayName); err != nil {
		// The link never reached the user, so the token is useless.
		log.Printf("[Password] Failed to send reset email to %s: %v", email, err)
		if delErr := u.resetRepo.Delete(ctx, reset.ID); delErr != nil {
			log.Printf("[Password] Failed to delete orphaned reset record: %v", delErr)
		}
		return "", apperr.Validation("failed to send reset email, please try again")
	}

	return neutralResetMessage, nil
}

func (u *passwordUsecase) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	if token == "" {
		return "", apperr.Validation("reset token is required")
	}
	if errs := validator.PasswordErrors(newPassword); len(errs) > 0 {
		return "", apperr.Validation("%s", strings.Join(errs, "\n"))
	}

	reset, err := u.resetRepo.GetByToken(ctx, token)
	if err != nil {
		return "", err
	}
	if reset == nil {
		return "", apperr.Validation("invalid or expired reset token")
	}
	if reset.IsExpired() {
		return "", apperr.Validation("reset token has expired, please request a new one")
	}
	if reset.Used {
		return "", apperr.Validation("this reset token has already been used")
	}

	if err := u.idp.UpdatePassword(ctx, reset.UserID, newPassword); err != nil {
		return "", fmt.Errorf("failed to update password: %w", err)
	}

	if err := u.resetRepo.MarkAsUsed(ctx, reset.ID); err != nil {
		log.Printf("[Password] Failed to mark reset token as used: %v", err)
	}

	// Best-effort heads-up on the other channels.
	if u.notifier != nil {
		if user, err := u.users.GetByUID(ctx, reset.UserID); err == nil && user != nil {
			if _, err := u.notifier.Notify(ctx, user, "Password changed",
				"Your password was reset. If this wasn't you, contact support.",
				"password_reset", nil); err != nil {
				log.Printf("[Password] Failed to notify user %s: %v", reset.UserID, err)
			}
		}
	}

	return "Password has been reset successfully.", nil
}

func (u *passwordUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (string, error) {
	if len(newPassword) < validator.MinPasswordLength {
		return "", apperr.Validation("password must be at least %d characters long", validator.MinPasswordLength)
	}
	if currentPassword == newPassword {
		return "", apperr.Validation("new password must be different from current password")
	}

	if err := u.idp.UpdatePassword(ctx, userID, newPassword); err != nil {
		if errors.Is(err, identity.ErrAccountNotFound) {
			return "", apperr.NotFound("user not found")
		}
		return "", fmt.Errorf("failed to update password: %w", err)
	}

	return "Password changed successfully.", nil
}

func generateResetToken(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = tokenAlphabet[n.Int64()]
	}
	return string(b), nil
}
