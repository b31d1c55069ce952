package domain

import "time"

// PasswordReset is a single-use reset token. The collection is
// backend-only; records never leave the service, so there are no JSON
// tags here.
type PasswordReset struct {
	ID        string     `firestore:"-"`
	Email     string     `firestore:"email"`
	UserID    string     `firestore:"user_id"`
	Token     string     `firestore:"token"`
	ExpiresAt time.Time  `firestore:"expires_at"`
	CreatedAt time.Time  `firestore:"created_at"`
	Used      bool       `firestore:"used"`
	UsedAt    *time.Time `firestore:"used_at"`
}

func (p *PasswordReset) IsExpired() bool {
	return time.Now().UTC().After(p.ExpiresAt)
}
