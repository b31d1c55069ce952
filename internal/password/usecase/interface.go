package usecase

import (
	"context"

	notifdomain "plek-backend/internal/notification/domain"
	userdomain "plek-backend/internal/user/domain"
	"plek-backend/pkg/identity"
)

// PasswordUsecase drives the password management handlers. Each method
// returns the user-facing message alongside any error.
type PasswordUsecase interface {
	RequestReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) (string, error)
}

// IdentityProvider is the slice of the identity platform this usecase
// needs.
type IdentityProvider interface {
	AccountByEmail(ctx context.Context, email string) (*identity.Account, error)
	UpdatePassword(ctx context.Context, uid, password string) error
}

// ResetMailer delivers the reset link.
type ResetMailer interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, resetLink, userName string) error
}

// Notifier fans a domain event out to the notification pipeline.
type Notifier interface {
	Notify(ctx context.Context, user *userdomain.User, title, body, notificationType string, data map[string]string) (*notifdomain.Notification, error)
}

// UserGetter resolves the user record a notification belongs to.
type UserGetter interface {
	GetByUID(ctx context.Context, uid string) (*userdomain.User, error)
}
