package dto

import notifdomain "plek-backend/internal/notification/domain"

type RegisterDeviceRequest struct {
	DeviceToken string `json:"device_token"`
	DeviceType  string `json:"device_type"`
	DeviceName  string `json:"device_name"`
}

type NotificationsResponse struct {
	Notifications []*notifdomain.Notification `json:"notifications"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

type MarkedCountResponse struct {
	MarkedCount int `json:"marked_count"`
}

type NotificationIDResponse struct {
	NotificationID string `json:"notification_id"`
}

type DeviceResponse struct {
	DeviceToken string `json:"device_token"`
	DeviceType  string `json:"device_type"`
	DeviceName  string `json:"device_name"`
}
