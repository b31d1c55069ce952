package dto

import userdomain "plek-backend/internal/user/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	PhoneNumber    string `json:"phone_number"`
	ProfilePicture string `json:"profile_picture"`
}

type TokenLoginRequest struct {
	Token string `json:"token" binding:"required"`
}

type AuthResponse struct {
	Token string           `json:"token"`
	User  *userdomain.User `json:"user"`
}
