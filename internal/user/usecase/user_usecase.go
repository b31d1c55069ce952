package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	userdomain "plek-backend/internal/user/domain"
	userdto "plek-backend/internal/user/dto"
	"plek-backend/internal/user/repository"
	"plek-backend/pkg/apperr"
	"plek-backend/pkg/blob"
	"plek-backend/pkg/identity"
	"plek-backend/pkg/validator"
)

const profilePhotoFolder = "profile_photos"

// userUsecase implements UserUsecase
type userUsecase struct {
	userRepo repository.UserRepository
	idp      IdentityProvider
	uploader ImageUploader
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, idp IdentityProvider, uploader ImageUploader) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		idp:      idp,
		uploader: uploader,
	}
}

func (u *userUsecase) GetAll(ctx context.Context) ([]*userdomain.User, error) {
	return u.userRepo.GetAll(ctx)
}

func (u *userUsecase) GetByUID(ctx context.Context, uid string) (*userdomain.User, error) {
	if uid == "" {
		return nil, apperr.Validation("user ID cannot be empty")
	}
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("no user found with UID: %s", uid)
	}
	return user, nil
}

func (u *userUsecase) GetByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	if !validator.ValidEmail(email) {
		return nil, apperr.Validation("invalid email format")
	}
	return u.userRepo.GetByEmail(ctx, strings.ToLower(email))
}

func (u *userUsecase) Create(ctx context.Context, req *userdto.CreateUserRequest, password string, createAccount bool) (*userdomain.User, error) {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if createAccount && password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apperr.Validation("missing required fields: %s", strings.Join(missing, ", "))
	}

	if !validator.ValidEmail(req.Email) {
		return nil, apperr.Validation("invalid email format")
	}
	// Emails are stored lowercase for consistent lookups.
	email := strings.ToLower(req.Email)

	if req.PhoneNumber != "" && !validator.ValidPhoneNumber(req.PhoneNumber) {
		return nil, apperr.Validation("invalid phone number format")
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validation("user with email %s already exists", email)
	}

	firstName := cleanName(req.FirstName)
	lastName := cleanName(req.LastName)

	profilePicture := req.ProfilePicture
	if profilePicture != "" && !blob.IsURL(profilePicture) {
		if u.uploader == nil {
			return nil, apperr.Validation("image uploads are not configured")
		}
		fileName := fmt.Sprintf("profile_%s.jpg", uuid.New().String())
		url, err := u.uploader.UploadImage(ctx, profilePicture, fileName, profilePhotoFolder)
		if err != nil {
			return nil, apperr.Validation("failed to upload profile picture: %s", err.Error())
		}
		profilePicture = url
	} else if profilePicture != "" {
		profilePicture = validator.Sanitize(profilePicture)
	}

	uid := req.FirebaseUID
	if uid == "" {
		if !createAccount {
			return nil, apperr.Validation("firebase_uid is required to create a user")
		}
		if errs := validator.PasswordErrors(password); len(errs) > 0 {
			return nil, apperr.Validation("%s", strings.Join(errs, "\n"))
		}
		displayName := strings.TrimSpace(firstName + " " + lastName)
		uid, err = u.idp.CreateAccount(ctx, email, password, displayName)
		if err != nil {
			if errors.Is(err, identity.ErrEmailExists) {
				return nil, apperr.Validation("user with email %s already exists", email)
			}
			return nil, err
		}
	}

	role := req.Role
	if role == "" {
		role = "user"
	}

	user := &userdomain.User{
		ID:             uid,
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		Role:           role,
		ProfilePicture: profilePicture,
		PhoneNumber:    req.PhoneNumber,
		IsActive:       true,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("[User] User created: %s", user.ID)
	return user, nil
}

func (u *userUsecase) Update(ctx context.Context, uid string, req *userdto.UpdateUserRequest) (*userdomain.User, error) {
	existing, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("no user found with UID: %s", uid)
	}

	fields := make(map[string]any)

	if req.Email != nil {
		if !validator.ValidEmail(*req.Email) {
			return nil, apperr.Validation("invalid email format")
		}
		email := strings.ToLower(*req.Email)
		if email != strings.ToLower(existing.Email) {
			inUse, err := u.userRepo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if inUse != nil && inUse.ID != uid {
				return nil, apperr.Validation("email %s is already in use", email)
			}
			// Keep the identity provider in sync before touching the record.
			if err := u.idp.UpdateEmail(ctx, uid, email); err != nil {
				return nil, fmt.Errorf("error updating email with identity provider: %w", err)
			}
		}
		fields["email"] = email
	}

	if req.FirstName != nil {
		fields["first_name"] = cleanName(*req.FirstName)
	}
	if req.LastName != nil {
		fields["last_name"] = cleanName(*req.LastName)
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}

	if req.PhoneNumber != nil {
		if *req.PhoneNumber != "" && !validator.ValidPhoneNumber(*req.PhoneNumber) {
			return nil, apperr.Validation("invalid phone number format")
		}
		fields["phone_number"] = *req.PhoneNumber
	}

	if req.ProfilePicture != nil {
		picture := *req.ProfilePicture
		if picture != "" && !blob.IsURL(picture) {
			if u.uploader == nil {
				return nil, apperr.Validation("image uploads are not configured")
			}
			fileName := fmt.Sprintf("profile_%s_%s.jpg", uid, uuid.New().String())
			url, err := u.uploader.UploadImage(ctx, picture, fileName, profilePhotoFolder)
			if err != nil {
				return nil, apperr.Validation("failed to upload profile picture: %s", err.Error())
			}
			picture = url
		} else {
			picture = validator.Sanitize(picture)
		}
		fields["profile_picture"] = picture
	}

	updated, err := u.userRepo.Update(ctx, uid, fields)
	if err != nil {
		return nil, err
	}

	log.Printf("[User] User updated: %s", uid)
	return updated, nil
}

func (u *userUsecase) Delete(ctx context.Context, uid string) error {
	user, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("no user found with UID: %s", uid)
	}

	if err := u.userRepo.Delete(ctx, uid); err != nil {
		return err
	}

	// The record is gone; a failed provider-side delete is logged, not
	// surfaced, so the caller still sees success.
	if err := u.idp.DeleteAccount(ctx, uid); err != nil {
		log.Printf("[User] User %s deleted from store but not from identity provider: %v", uid, err)
	}

	log.Printf("[User] User deleted: %s", uid)
	return nil
}

func (u *userUsecase) SetOnboarding(ctx context.Context, uid string, completed bool) (*userdomain.User, error) {
	existing, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("no user found with UID: %s", uid)
	}

	return u.userRepo.Update(ctx, uid, map[string]any{
		"onboarding_completed": completed,
	})
}

func (u *userUsecase) UpdatePhoto(ctx context.Context, uid, photo string) (*userdomain.User, error) {
	existing, err := u.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperr.NotFound("no user found with UID: %s", uid)
	}

	if u.uploader == nil {
		return nil, apperr.Validation("image uploads are not configured")
	}
	if _, err := blob.ValidateImage(photo); err != nil {
		return nil, apperr.Validation("%s", err.Error())
	}

	fileName := fmt.Sprintf("profile_%s_%s.jpg", uid, uuid.New().String())
	url, err := u.uploader.UploadImage(ctx, photo, fileName, profilePhotoFolder)
	if err != nil {
		return nil, err
	}

	return u.userRepo.Update(ctx, uid, map[string]any{
		"profile_picture": url,
	})
}

// cleanName sanitizes a name field and fixes shouted input.
func cleanName(name string) string {
	name = validator.Sanitize(name)
	if name != "" && name == strings.ToUpper(name) && name != strings.ToLower(name) {
		return titleCase(name)
	}
	return name
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
