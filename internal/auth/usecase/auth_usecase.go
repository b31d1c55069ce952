package usecase

import (
	"context"
	"fmt"
	"log"

	"plek-backend/internal/auth/dto"
	userdomain "plek-backend/internal/user/domain"
	userdto "plek-backend/internal/user/dto"
	"plek-backend/pkg/apperr"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	idp      IdentityProvider
	users    UserManager
	notifier Notifier
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(idp IdentityProvider, users UserManager, notifier Notifier) AuthUsecase {
	return &authUsecase{
		idp:      idp,
		users:    users,
		notifier: notifier,
	}
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	idToken, err := u.idp.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user record not found for %s", email)
	}

	return &dto.AuthResponse{Token: idToken, User: user}, nil
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := u.users.Create(ctx, &userdto.CreateUserRequest{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
	}, req.Password, true)
	if err != nil {
		return nil, err
	}

	token, err := u.idp.CustomToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	// The account exists either way, so a failed welcome notification
	// is logged rather than surfaced.
	if u.notifier != nil {
		body := fmt.Sprintf("Hi %s, your account is ready. Finish onboarding to get started.", user.DisplayName())
		if _, err := u.notifier.Notify(ctx, user, "Welcome to Plek", body, "welcome", nil); err != nil {
			log.Printf("[Auth] Failed to send welcome notification to %s: %v", user.ID, err)
		}
	}

	return &dto.AuthResponse{Token: token, User: user}, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, uid string) (*userdomain.User, error) {
	user, err := u.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user %s not found", uid)
	}
	return user, nil
}

func (u *authUsecase) TokenLogin(ctx context.Context, idToken string) (*userdomain.User, error) {
	token, err := u.idp.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return u.CurrentUser(ctx, token.UID)
}
