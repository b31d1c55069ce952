package domain

import "time"

// User is a registered account. The document key doubles as the
// identity-provider UID; there is no separate ID generation.
type User struct {
	ID                  string    `json:"id" firestore:"-"`
	Email               string    `json:"email" firestore:"email"`
	FirstName           string    `json:"first_name" firestore:"first_name"`
	LastName            string    `json:"last_name" firestore:"last_name"`
	Role                string    `json:"role" firestore:"role"`
	ProfilePicture      string    `json:"profile_picture,omitempty" firestore:"profile_picture"`
	PhoneNumber         string    `json:"phone_number,omitempty" firestore:"phone_number"`
	IsActive            bool      `json:"is_active" firestore:"is_active"`
	OnboardingCompleted bool      `json:"onboarding_completed" firestore:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" firestore:"updated_at"`
}

// DisplayName is the user's full name, used to greet them in outbound
// messages.
func (u *User) DisplayName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
