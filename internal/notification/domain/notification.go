package domain

import "time"

// Notification is an in-app message stored in the realtime database.
// The push key is assigned by the store; ID is empty until created.
type Notification struct {
	ID        string            `json:"id,omitempty"`
	UserID    string            `json:"user_id"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Type      string            `json:"type"`
	Read      bool              `json:"read"`
	ReadAt    *time.Time        `json:"read_at,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Data      map[string]string `json:"data,omitempty"`
	ActionURL string            `json:"action_url,omitempty"`
}
