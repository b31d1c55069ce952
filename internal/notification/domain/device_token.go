package domain

import "time"

// DeviceToken registers a device for push delivery. The token itself is
// the document key, so re-registering a token moves it to the new owner
// instead of duplicating it.
type DeviceToken struct {
	UserID     string    `json:"user_id" firestore:"user_id"`
	Token      string    `json:"device_token" firestore:"device_token"`
	DeviceType string    `json:"device_type" firestore:"device_type"`
	DeviceName string    `json:"device_name" firestore:"device_name"`
	IsActive   bool      `json:"is_active" firestore:"is_active"`
	CreatedAt  time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updated_at"`
}
