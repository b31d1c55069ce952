package usecase

import (
	"context"

	userdomain "plek-backend/internal/user/domain"
	userdto "plek-backend/internal/user/dto"
)

// UserUsecase drives the user resource handlers.
type UserUsecase interface {
	GetAll(ctx context.Context) ([]*userdomain.User, error)
	GetByUID(ctx context.Context, uid string) (*userdomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
	// Create writes the user record. With createAccount set it first
	// registers the account with the identity provider and keys the
	// record by the resulting UID.
	Create(ctx context.Context, req *userdto.CreateUserRequest, password string, createAccount bool) (*userdomain.User, error)
	Update(ctx context.Context, uid string, req *userdto.UpdateUserRequest) (*userdomain.User, error)
	Delete(ctx context.Context, uid string) error
	SetOnboarding(ctx context.Context, uid string, completed bool) (*userdomain.User, error)
	UpdatePhoto(ctx context.Context, uid, photo string) (*userdomain.User, error)
}

// IdentityProvider is the slice of the identity platform user
// management this usecase needs.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	UpdateEmail(ctx context.Context, uid, email string) error
	DeleteAccount(ctx context.Context, uid string) error
}

// ImageUploader stores a profile image and returns its public URL.
// URL payloads pass through unchanged.
type ImageUploader interface {
	UploadImage(ctx context.Context, imageData, fileName, folderPath string) (string, error)
}
