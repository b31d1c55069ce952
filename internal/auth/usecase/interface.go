package usecase

import (
	"context"

	"plek-backend/internal/auth/dto"
	notifdomain "plek-backend/internal/notification/domain"
	userdomain "plek-backend/internal/user/domain"
	userdto "plek-backend/internal/user/dto"
	"plek-backend/pkg/identity"
)

// AuthUsecase defines the interface for authentication operations
type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	CurrentUser(ctx context.Context, uid string) (*userdomain.User, error)
	TokenLogin(ctx context.Context, idToken string) (*userdomain.User, error)
}

// IdentityProvider is the slice of the identity platform auth needs.
type IdentityProvider interface {
	SignInWithPassword(ctx context.Context, email, password string) (string, error)
	CustomToken(ctx context.Context, uid string) (string, error)
	VerifyToken(ctx context.Context, idToken string) (*identity.Token, error)
}

// UserManager creates and resolves user records.
type UserManager interface {
	Create(ctx context.Context, req *userdto.CreateUserRequest, password string, createAccount bool) (*userdomain.User, error)
	GetByUID(ctx context.Context, uid string) (*userdomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
}

// Notifier fans the welcome event out after registration.
type Notifier interface {
	Notify(ctx context.Context, user *userdomain.User, title, body, notificationType string, data map[string]string) (*notifdomain.Notification, error)
}
