package dto

import userdomain "plek-backend/internal/user/domain"

type CreateUserRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profile_picture"`
	PhoneNumber    string `json:"phone_number"`
	FirebaseUID    string `json:"firebase_uid"`
}

// UpdateUserRequest uses pointers so absent fields are left untouched.
type UpdateUserRequest struct {
	Email          *string `json:"email"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Role           *string `json:"role"`
	ProfilePicture *string `json:"profile_picture"`
	PhoneNumber    *string `json:"phone_number"`
}

type OnboardingRequest struct {
	OnboardingCompleted *bool `json:"onboarding_completed"`
}

type PhotoRequest struct {
	Photo string `json:"photo" binding:"required"`
}

type UserResponse struct {
	User *userdomain.User `json:"user"`
}

type UsersResponse struct {
	Users []*userdomain.User `json:"users"`
}

type PhotoResponse struct {
	User           *userdomain.User `json:"user"`
	ProfilePicture string           `json:"profile_picture"`
}
