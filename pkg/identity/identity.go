// Package identity wraps the platform identity provider. All account
// credentials (passwords, tokens) live with the provider; the service
// never stores them.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Token is a verified bearer credential.
type Token struct {
	UID    string
	Claims map[string]any
}

// Account is the provider-side view of a user.
type Account struct {
	UID           string
	Email         string
	DisplayName   string
	EmailVerified bool
}

// Service talks to the identity provider's Admin and REST surfaces.
type Service struct {
	client     *auth.Client
	webAPIKey  string
	httpClient *http.Client
	signInURL  string
}

func NewService(client *auth.Client, webAPIKey string) *Service {
	return &Service{
		client:     client,
		webAPIKey:  webAPIKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		signInURL:  "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword",
	}
}

// VerifyToken checks signature and expiry of a bearer ID token and
// returns the identity it carries.
func (s *Service) VerifyToken(ctx context.Context, idToken string) (*Token, error) {
	decoded, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}
	return &Token{UID: decoded.UID, Claims: decoded.Claims}, nil
}

// CreateAccount registers a new account with the provider and returns
// its UID.
func (s *Service) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		EmailVerified(false)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	record, err := s.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", ErrEmailExists
		}
		return "", err
	}
	return record.UID, nil
}

func (s *Service) AccountByEmail(ctx context.Context, email string) (*Account, error) {
	record, err := s.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &Account{
		UID:           record.UID,
		Email:         record.Email,
		DisplayName:   record.DisplayName,
		EmailVerified: record.EmailVerified,
	}, nil
}

func (s *Service) UpdateEmail(ctx context.Context, uid, email string) error {
	_, err := s.client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Email(email))
	return err
}

func (s *Service) UpdatePassword(ctx context.Context, uid, password string) error {
	_, err := s.client.UpdateUser(ctx, uid, (&auth.UserToUpdate{}).Password(password))
	if err != nil && auth.IsUserNotFound(err) {
		return ErrAccountNotFound
	}
	return err
}

func (s *Service) DeleteAccount(ctx context.Context, uid string) error {
	return s.client.DeleteUser(ctx, uid)
}

// CustomToken mints a provider token the client exchanges for an ID token.
func (s *Service) CustomToken(ctx context.Context, uid string) (string, error) {
	return s.client.CustomToken(ctx, uid)
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken string `json:"idToken"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword verifies an email/password pair against the
// provider's REST sign-in endpoint. The Admin SDK cannot check
// passwords, so this is the one REST call in the pipeline.
func (s *Service) SignInWithPassword(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(signInRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.signInURL, s.webAPIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer resp.Body.Close()

	var body signInResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		switch body.Error.Message {
		case "INVALID_PASSWORD", "EMAIL_NOT_FOUND", "INVALID_LOGIN_CREDENTIALS":
			return "", ErrInvalidCredentials
		default:
			return "", fmt.Errorf("identity provider error: %s", body.Error.Message)
		}
	}

	return body.IDToken, nil
}
